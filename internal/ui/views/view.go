package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"tokengrip/internal/domain"
	"tokengrip/internal/ui/state"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	ellipsis      = "…"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Tabs        []state.TabRoute[domain.Route]
	ActiveTab   int
	Blocks      []state.TabRoute[domain.Route]
	ActiveBlock domain.ActiveBlock

	Token         string
	TokenInput    string // rendered text input while editing the token
	EditingToken  bool
	Secret        string
	SecretInput   string
	EditingSecret bool

	Header    *state.Text
	Payload   *state.Text
	Signature *state.Text

	Claims          []domain.Claim
	SelectedClaim   int
	History         []domain.HistoryEntry
	SelectedHistory int
	Help            []state.HelpEntry
	SelectedHelp    int

	Verification  domain.VerifyStatus
	DecodeError   string
	StatusMessage string
	ModeName      string

	HelpModel      help.Model
	Keys           help.KeyMap
	ShowHelpFooter bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(light bool) *Renderer {
	return &Renderer{styles: NewStyles(light)}
}

// SetTheme switches between the dark and light styles
func (r *Renderer) SetTheme(light bool) {
	r.styles = NewStyles(light)
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	width := vs.Width
	if width <= 0 {
		width = defaultWidth
	}
	height := vs.Height
	if height <= 0 {
		height = defaultHeight
	}
	inner := max(width-r.styles.Main.GetHorizontalFrameSize(), 1)

	top := r.renderTabs(vs)
	bottom := []string{r.renderStatus(vs, inner)}
	if vs.ShowHelpFooter && vs.Keys != nil {
		vs.HelpModel.Width = inner
		bottom = append(bottom, vs.HelpModel.View(vs.Keys))
	}

	bodyHeight := height - 1 - len(bottom)
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var body string
	switch tabRoute(vs) {
	case domain.RouteClaims:
		body = r.renderClaims(vs, inner, bodyHeight)
	case domain.RouteHistory:
		body = r.renderHistory(vs, inner, bodyHeight)
	case domain.RouteHelp:
		body = r.renderHelp(vs, inner, bodyHeight)
	default:
		body = r.renderDecoder(vs, inner, bodyHeight)
	}

	parts := append([]string{top, body}, bottom...)
	return r.styles.Main.MaxHeight(height).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func tabRoute(vs ViewState) domain.RouteID {
	if vs.ActiveTab >= 0 && vs.ActiveTab < len(vs.Tabs) {
		return vs.Tabs[vs.ActiveTab].Route.ID
	}
	return domain.RouteDecoder
}

func (r *Renderer) renderTabs(vs ViewState) string {
	parts := []string{r.styles.Title.Render("tokengrip")}
	for i, tab := range vs.Tabs {
		label := fmt.Sprintf("%d %s", i+1, tab.Title)
		if i == vs.ActiveTab {
			parts = append(parts, r.styles.ActiveTab.Render(label))
		} else {
			parts = append(parts, r.styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (r *Renderer) renderDecoder(vs ViewState, width, height int) string {
	left := width / 2
	right := width - left

	tokenBody := vs.TokenInput
	if !vs.EditingToken {
		tokenBody = strings.Join(wrap(vs.Token, max(left-4, 1)), "\n")
		if vs.Token == "" {
			tokenBody = r.styles.Dim.Render("Press e to paste a token")
		}
	}
	if vs.DecodeError != "" {
		tokenBody += "\n\n" + r.styles.StatusError.Render(vs.DecodeError)
	}
	tokenBlock := r.block(vs, domain.BlockToken, "(Press <e> to edit | <c> to copy)", tokenBody, left, height)

	headerHeight := max(height/4, 4)
	signatureHeight := max(height/4, 6)
	payloadHeight := max(height-headerHeight-signatureHeight, 3)

	header := r.block(vs, domain.BlockHeader, "(<c> to copy | <v> to view)",
		textWindow(vs.Header, max(right-4, 1), headerHeight-3), right, headerHeight)
	payload := r.block(vs, domain.BlockPayload, "(<c> to copy | <v> to view)",
		textWindow(vs.Payload, max(right-4, 1), payloadHeight-3), right, payloadHeight)

	secret := vs.SecretInput
	if !vs.EditingSecret {
		secret = strings.Repeat("•", max(min(runewidth.StringWidth(vs.Secret), right-14), 0))
		if vs.Secret == "" {
			secret = r.styles.Dim.Render("none")
		}
	}
	sigLines := []string{
		"Secret: " + secret,
		r.styles.VerificationStyle(vs.Verification).Render(vs.Verification.String()),
		textWindow(vs.Signature, max(right-4, 1), signatureHeight-5),
	}
	signature := r.block(vs, domain.BlockSignature, "(<e> to edit secret | <c> to copy)",
		strings.Join(sigLines, "\n"), right, signatureHeight)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		tokenBlock,
		lipgloss.JoinVertical(lipgloss.Left, header, payload, signature),
	)
}

func (r *Renderer) renderClaims(vs ViewState, width, height int) string {
	inner := max(width-4, 3)
	nameWidth := max(min(16, inner/4), 1)
	noteWidth := max(min(24, inner/3), 1)
	valueWidth := max(inner-nameWidth-noteWidth-2, 1)

	row := func(name, value, note string) string {
		return cell(name, nameWidth) + " " + cell(value, valueWidth) + " " + cell(note, noteWidth)
	}

	lines := []string{r.styles.Header.Render(row("Claim", "Value", "Note"))}
	if len(vs.Claims) == 0 {
		lines = append(lines, r.styles.Dim.Render("No claims"))
	}
	start, end := window(vs.SelectedClaim, len(vs.Claims), height-4)
	for i := start; i < end; i++ {
		c := vs.Claims[i]
		line := row(c.Name, c.Value, c.Note)
		if i == vs.SelectedClaim {
			line = r.styles.HighlightBg.Render(line)
		}
		lines = append(lines, line)
	}

	return r.block(vs, domain.BlockClaims, "(<c> to copy row)", strings.Join(lines, "\n"), width, height)
}

func (r *Renderer) renderHistory(vs ViewState, width, height int) string {
	var lines []string
	if len(vs.History) == 0 {
		lines = append(lines, r.styles.Dim.Render("No tokens decoded yet"))
	}
	start, end := window(vs.SelectedHistory, len(vs.History), height-3)
	for i := start; i < end; i++ {
		e := vs.History[i]
		line := fmt.Sprintf("%s  %-6s %s  %s",
			e.DecodedAt.Format("15:04:05"), e.Algorithm, cell(e.Subject, 16), e.Raw)
		line = runewidth.Truncate(line, max(width-4, 1), ellipsis)
		if i == vs.SelectedHistory {
			line = r.styles.HighlightBg.Render(line)
		}
		lines = append(lines, line)
	}
	return r.block(vs, domain.BlockHistory, "(<enter> to load | <c> to copy)", strings.Join(lines, "\n"), width, height)
}

func (r *Renderer) renderHelp(vs ViewState, width, height int) string {
	keyWidth := 0
	for _, e := range vs.Help {
		keyWidth = max(keyWidth, runewidth.StringWidth(e.Keys))
	}

	var lines []string
	start, end := window(vs.SelectedHelp, len(vs.Help), height-3)
	for i := start; i < end; i++ {
		e := vs.Help[i]
		line := r.styles.Key.Render(runewidth.FillRight(e.Keys, keyWidth)) + "  " + r.styles.Text.Render(e.Description)
		if i == vs.SelectedHelp {
			line = r.styles.HighlightBg.Render(line)
		}
		lines = append(lines, line)
	}
	return r.block(vs, domain.BlockHelp, "", strings.Join(lines, "\n"), width, height)
}

func (r *Renderer) renderStatus(vs ViewState, width int) string {
	parts := []string{r.styles.Key.Render("[" + vs.ModeName + "]")}
	if vs.StatusMessage != "" {
		parts = append(parts, r.styles.StatusInfo.Render(vs.StatusMessage))
	}
	return ansi.Truncate(strings.Join(parts, " "), width, ellipsis)
}

// block draws a bordered pane whose border is highlighted when it has focus
func (r *Renderer) block(vs ViewState, id domain.ActiveBlock, hint, body string, width, height int) string {
	style := r.styles.Block
	if vs.ActiveBlock == id {
		style = r.styles.ActiveBlock
	}

	title := r.styles.BlockTitle.Render(blockTitle(vs, id))
	if hint != "" {
		title += " " + r.styles.Hint.Render(hint)
	}

	content := title + "\n" + body
	frameW := style.GetHorizontalFrameSize()
	frameH := style.GetVerticalFrameSize()
	lines := strings.Split(content, "\n")
	if limit := height - frameH; limit > 0 && len(lines) > limit {
		lines = lines[:limit]
	}

	return style.
		Width(max(width-style.GetHorizontalBorderSize(), 1)).
		Height(max(height-frameH, 1)).
		Render(truncateLines(lines, width-frameW))
}

func blockTitle(vs ViewState, id domain.ActiveBlock) string {
	for _, b := range vs.Blocks {
		if b.Route.Block == id {
			return b.Title
		}
	}
	for _, t := range vs.Tabs {
		if t.Route.Block == id {
			return t.Title
		}
	}
	return string(id)
}

// textWindow renders the visible lines of a text pane, starting at its offset
func textWindow(t *state.Text, width, height int) string {
	if t == nil || height <= 0 {
		return ""
	}
	lines := t.Lines()
	start := min(t.Offset(), len(lines))
	end := min(start+height, len(lines))
	return truncateLines(lines[start:end], width)
}

func truncateLines(lines []string, width int) string {
	if width <= 0 {
		return strings.Join(lines, "\n")
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		// styled lines carry escape sequences
		out[i] = ansi.Truncate(l, width, ellipsis)
	}
	return strings.Join(out, "\n")
}

// window returns the slice bounds of the rows shown so that selected is visible
func window(selected, n, height int) (int, int) {
	if height <= 0 || n == 0 {
		return 0, 0
	}
	if n <= height {
		return 0, n
	}
	start := 0
	if selected >= height {
		start = selected - height + 1
	}
	return start, start + height
}

// wrap splits s into chunks at most width cells wide
func wrap(s string, width int) []string {
	if s == "" {
		return nil
	}
	if width <= 0 {
		return []string{s}
	}
	var out []string
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width && b.Len() > 0 {
			out = append(out, b.String())
			b.Reset()
			w = 0
		}
		b.WriteRune(r)
		w += rw
	}
	if b.Len() > 0 {
		out = append(out, b.String())
	}
	return out
}

func cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, ellipsis), width)
}
