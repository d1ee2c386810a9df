package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"tokengrip/internal/config"
	"tokengrip/internal/domain"
	"tokengrip/internal/eventbus"
	"tokengrip/internal/history"
	"tokengrip/internal/token"
	"tokengrip/internal/ui/handlers"
	"tokengrip/internal/ui/input"
	inputtypes "tokengrip/internal/ui/input/types"
	"tokengrip/internal/ui/services/navigation"
	"tokengrip/internal/ui/state"
	"tokengrip/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	state   *state.AppState // centralized state
	history history.Store

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	inPagerMode bool // tracks if we're currently in pager mode

	settingsRevision uint64

	renderer     *views.Renderer
	navigator    *navigation.Service
	inputHandler *input.Handler
	eventHandler *handlers.EventHandler // event processing handler
	clipboard    Clipboard
	pager        Pager
	now          func() time.Time

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, store history.Store) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if store == nil {
		store = history.NewMemoryStore(cfg.HistoryLimit)
	}

	inputHandler := input.New()
	appState := state.NewAppState(HelpEntries(inputHandler.Keys()))
	appState.LightTheme = cfg.LightTheme
	appState.SetHistory(store.All())

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		history:      store,
		help:         help.New(),
		renderer:     views.NewRenderer(cfg.LightTheme),
		navigator:    navigation.NewService(),
		inputHandler: inputHandler,
		clipboard:    SystemClipboard(),
		pager:        NewPagerOps(),
		now:          time.Now,
	}

	m.eventHandler = handlers.NewEventHandler(appState, m.setStatus)

	m.navigator.OnMove(func(e navigation.CursorMovedEvent) {
		log.Printf("cursor moved on %s: %d -> %d", m.state.ActiveRoute().Block, e.From.Index, e.To.Index)
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if ops, ok := m.pager.(*PagerOps); ok {
		ops.SetProgram(p)
	}
}

// SetClipboard replaces the clipboard copy operations write to
func (m *Model) SetClipboard(c Clipboard) {
	m.clipboard = c
}

// SetPager replaces the pager used for long content
func (m *Model) SetPager(p Pager) {
	m.pager = p
}

// LoadToken sets the token and secret decoded when the program starts
func (m *Model) LoadToken(raw, secret string) {
	m.state.Token = strings.TrimSpace(raw)
	m.state.Secret = secret
}

// State exposes the application state for inspection
func (m *Model) State() *state.AppState {
	return m.state
}

// Init starts decoding of a token given on the command line
func (m *Model) Init() tea.Cmd {
	if m.state.Token == "" {
		return nil
	}
	return m.decodeToken()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{State: m.state}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		// Non-keyboard messages reach the text input (cursor blink) and the model
		inputCmd := m.inputHandler.Update(msg)
		_, cmd := m.handleNonKeyboardMsg(msg)
		return m, tea.Batch(inputCmd, cmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	mode := m.inputHandler.CurrentMode()
	vs := views.ViewState{
		Width:           m.width,
		Height:          m.height,
		Tabs:            m.state.Tabs.Items(),
		ActiveTab:       m.state.Tabs.Index(),
		Blocks:          m.state.Blocks.Items(),
		ActiveBlock:     m.state.ActiveRoute().Block,
		Token:           m.state.Token,
		EditingToken:    mode == inputtypes.ModeEditToken,
		Secret:          m.state.Secret,
		EditingSecret:   mode == inputtypes.ModeEditSecret,
		Header:          m.state.Header,
		Payload:         m.state.Payload,
		Signature:       m.state.Signature,
		Claims:          m.state.Claims.Items(),
		SelectedClaim:   selectedIndex(m.state.Claims.Selected()),
		History:         m.state.History.Items(),
		SelectedHistory: selectedIndex(m.state.History.Selected()),
		Help:            m.state.Help.Items(),
		SelectedHelp:    selectedIndex(m.state.Help.Selected()),
		Verification:    m.state.Verification,
		DecodeError:     m.state.DecodeError,
		StatusMessage:   m.state.StatusMessage,
		ModeName:        m.inputHandler.ModeName(),
		HelpModel:       m.help,
		Keys:            m.inputHandler.Keys(),
		ShowHelpFooter:  m.config.UISettings.ShowHelpFooter,
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		if mode == inputtypes.ModeEditToken {
			vs.TokenInput = ti.View()
		} else {
			vs.SecretInput = ti.View()
		}
	}
	return m.renderer.Render(vs)
}

func selectedIndex(i int, ok bool) int {
	if !ok {
		return -1
	}
	return i
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.Navigate(m.state.ActiveScrollable(), a.Direction)

	case inputtypes.NextTabAction:
		m.state.Tabs.Next()
	case inputtypes.PreviousTabAction:
		m.state.Tabs.Previous()
	case inputtypes.SetTabAction:
		if a.Index >= 0 && a.Index < len(m.state.Tabs.Items()) {
			m.state.Tabs.SetIndex(a.Index)
		}

	case inputtypes.NextBlockAction:
		m.state.Blocks.Next()
	case inputtypes.PreviousBlockAction:
		m.state.Blocks.Previous()
	case inputtypes.FocusAction:
		m.state.FocusRoute(a.Block)

	case inputtypes.UpdateTextAction:
		// the text input holds the draft until it is submitted

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeEditToken:
			m.state.Token = strings.TrimSpace(a.Text)
		case inputtypes.ModeEditSecret:
			m.state.Secret = a.Text
		}
		if m.state.Token == "" {
			m.state.ClearDecoded("")
			return nil
		}
		return m.decodeToken()

	case inputtypes.CancelTextAction:
		return m.setStatus("Edit cancelled")

	case inputtypes.CopyAction:
		return m.copyActive()

	case inputtypes.OpenPagerAction:
		return m.openPager()

	case inputtypes.LoadHistoryAction:
		entry, ok := m.state.History.SelectedItem()
		if !ok {
			return nil
		}
		m.state.Token = entry.Raw
		m.state.FocusRoute(domain.BlockToken)
		return m.decodeToken()

	case inputtypes.ToggleThemeAction:
		m.state.LightTheme = !m.state.LightTheme
		m.renderer.SetTheme(m.state.LightTheme)
		if m.bus != nil {
			m.settingsRevision++
			m.bus.Publish(eventbus.ConfigChangedEvent{Revision: m.settingsRevision, LightTheme: m.state.LightTheme})
		}

	case inputtypes.QuitAction:
		return tea.Quit

	default:
		log.Printf("unhandled action: %s", action.Type())
	}
	return nil
}

// decodeToken returns a command that decodes and verifies the current token
func (m *Model) decodeToken() tea.Cmd {
	raw, secret := m.state.Token, m.state.Secret
	return func() tea.Msg {
		d, err := token.Inspect(raw, secret)
		return tokenDecodedMsg{raw: raw, secret: secret, decoded: d, err: err}
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case tokenDecodedMsg:
		if msg.raw != m.state.Token || msg.secret != m.state.Secret {
			// a newer token or secret was submitted while this one was decoding
			return m, nil
		}
		if msg.err != nil {
			log.Printf("Decode failed: %v", msg.err)
			m.state.ClearDecoded(msg.err.Error())
			if m.bus != nil {
				m.bus.Publish(eventbus.DecodeFailedEvent{Raw: msg.raw, Err: msg.err})
			}
			return m, nil
		}

		d := msg.decoded
		now := m.now()
		m.state.SetDecoded(d.Header, d.Payload, d.Signature, d.Claims, token.ClaimRows(d.Claims, now))
		m.state.Verification = d.Verification

		entry := d.Entry(now)
		m.history.Add(entry)
		m.state.SetHistory(m.history.All())
		if m.bus != nil {
			m.bus.Publish(eventbus.TokenDecodedEvent{Entry: entry})
		}
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			log.Printf("Copy failed: %v", msg.err)
			return m, m.setStatus(fmt.Sprintf("Copy failed: %v", msg.err))
		}
		return m, m.setStatus(fmt.Sprintf("Copied %s to clipboard", msg.what))

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			return m, m.setStatus(fmt.Sprintf("Pager failed: %v", msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		return m, nil
	}
}

// setStatus shows message in the status bar for a few seconds
func (m *Model) setStatus(message string) tea.Cmd {
	m.state.StatusMessage = message
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// activeContent returns a label and the text copy and pager operate on
func (m *Model) activeContent() (string, string, bool) {
	switch block := m.state.ActiveRoute().Block; block {
	case domain.BlockToken:
		return "token", m.state.Token, m.state.Token != ""
	case domain.BlockHeader, domain.BlockPayload, domain.BlockSignature:
		text := m.state.ActiveText().Text()
		return strings.ToLower(string(block)), text, text != ""
	case domain.BlockClaims:
		claim, ok := m.state.Claims.SelectedItem()
		if !ok {
			return "", "", false
		}
		return "claim " + claim.Name, claim.Name + "=" + claim.Value, true
	case domain.BlockHistory:
		entry, ok := m.state.History.SelectedItem()
		if !ok {
			return "", "", false
		}
		return "token", entry.Raw, true
	case domain.BlockHelp:
		return "help", renderHelpContent(m.state.Help.Items()), true
	}
	return "", "", false
}

// copyActive returns a command writing the active content to the clipboard
func (m *Model) copyActive() tea.Cmd {
	what, text, ok := m.activeContent()
	if !ok {
		return m.setStatus("Nothing to copy")
	}
	clip := m.clipboard
	return func() tea.Msg {
		return copyResultMsg{what: what, err: clip.WriteAll(text)}
	}
}

// openPager returns a command that shows the active content in the pager
func (m *Model) openPager() tea.Cmd {
	_, text, ok := m.activeContent()
	if !ok {
		return m.setStatus("Nothing to view")
	}
	if m.state.ActiveRoute().Block == domain.BlockClaims {
		text = m.claimsContent()
	}
	pager, program := m.pager, m.program
	return func() tea.Msg {
		// Send pause message to stop rendering
		if program != nil {
			program.Send(pauseRenderingMsg{})
		}

		err := pager.Show(text)

		// Send resume message to restart rendering
		if program != nil {
			program.Send(resumeRenderingMsg{})
		}
		return pagerMsg{err: err}
	}
}

func (m *Model) claimsContent() string {
	var b strings.Builder
	for _, c := range m.state.Claims.Items() {
		fmt.Fprintf(&b, "%s = %s", c.Name, c.Value)
		if c.Note != "" {
			fmt.Fprintf(&b, "  (%s)", c.Note)
		}
		b.WriteString("\n")
	}
	return b.String()
}
