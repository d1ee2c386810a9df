package input

import (
	"tokengrip/internal/domain"
	"tokengrip/internal/ui/state"
)

// ModelContext adapts the application state to the input handler
type ModelContext struct {
	State *state.AppState
}

func (c *ModelContext) ActiveBlock() domain.ActiveBlock {
	return c.State.ActiveRoute().Block
}

func (c *ModelContext) TabCount() int {
	return len(c.State.Tabs.Items())
}

func (c *ModelContext) Token() string {
	return c.State.Token
}

func (c *ModelContext) Secret() string {
	return c.State.Secret
}
