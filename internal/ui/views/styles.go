package views

import (
	"github.com/charmbracelet/lipgloss"

	"tokengrip/internal/domain"
)

// palette holds the colors a theme is built from
type palette struct {
	title   string
	accent  string
	key     string
	text    string
	muted   string
	faint   string
	error   string
	warning string
	success string
	info    string
}

var darkPalette = palette{
	title:   "99",
	accent:  "39",
	key:     "220",
	text:    "252",
	muted:   "241",
	faint:   "238",
	error:   "203",
	warning: "214",
	success: "78",
	info:    "51",
}

var lightPalette = palette{
	title:   "55",
	accent:  "25",
	key:     "130",
	text:    "235",
	muted:   "245",
	faint:   "252",
	error:   "160",
	warning: "166",
	success: "28",
	info:    "30",
}

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Tab           lipgloss.Style
	ActiveTab     lipgloss.Style
	Block         lipgloss.Style
	ActiveBlock   lipgloss.Style
	BlockTitle    lipgloss.Style
	Hint          lipgloss.Style
	Text          lipgloss.Style
	Key           lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Header        lipgloss.Style
	HighlightBg   lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusInfo    lipgloss.Style
	Main          lipgloss.Style
}

// NewStyles creates the styles for the dark or light theme
func NewStyles(light bool) *Styles {
	p := darkPalette
	if light {
		p = lightPalette
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.title)),
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.accent)).
			Underline(true).
			Padding(0, 1),
		Block:       border.BorderForeground(lipgloss.Color(p.muted)),
		ActiveBlock: border.BorderForeground(lipgloss.Color(p.accent)),
		BlockTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.title)),
		Hint:        lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)).Italic(true),
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)),
		Key:         lipgloss.NewStyle().Foreground(lipgloss.Color(p.key)),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),
		Header:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.accent)),
		HighlightBg:   lipgloss.NewStyle().Background(lipgloss.Color(p.faint)).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.error)),   // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color(p.warning)), // yellow
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color(p.success)), // green
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.info)),    // cyan
		Main:          lipgloss.NewStyle().Padding(0, 1),
	}
}

// VerificationStyle returns the style for a signature verification status
func (s *Styles) VerificationStyle(status domain.VerifyStatus) lipgloss.Style {
	switch status {
	case domain.VerifyValid:
		return s.StatusSuccess
	case domain.VerifyInvalid:
		return s.StatusError
	case domain.VerifyUnsupported:
		return s.StatusWarning
	default:
		return s.Status
	}
}
