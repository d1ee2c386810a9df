package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"tokengrip/internal/domain"
)

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeEditToken
	ModeEditSecret
)

func (m Mode) String() string {
	switch m {
	case ModeEditToken:
		return "edit token"
	case ModeEditSecret:
		return "edit secret"
	default:
		return "normal"
	}
}

// IsText reports whether the mode edits text
func (m Mode) IsText() bool {
	return m == ModeEditToken || m == ModeEditSecret
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	ActiveBlock() domain.ActiveBlock
	TabCount() int
	Token() string
	Secret() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
