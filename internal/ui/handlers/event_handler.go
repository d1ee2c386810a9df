package handlers

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"tokengrip/internal/eventbus"
	"tokengrip/internal/token"
	"tokengrip/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state     *state.AppState
	setStatus func(message string) tea.Cmd
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, setStatus func(string) tea.Cmd) *EventHandler {
	return &EventHandler{
		state:     appState,
		setStatus: setStatus,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ClockTickEvent:
		if h.state.RawClaims != nil {
			// notes are relative to now; SetItems keeps the selected row
			h.state.Claims.SetItems(token.ClaimRows(h.state.RawClaims, e.At))
		}

	case eventbus.ErrorEvent:
		log.Printf("Error event: %s: %v", e.Message, e.Err)
		return h.status(e.Message)

	case eventbus.ConfigSavedEvent:
		return h.status("Settings saved")

	case eventbus.ConfigLoadedEvent:
		log.Printf("Config loaded from %s", e.Path)
	}
	return nil
}

func (h *EventHandler) status(message string) tea.Cmd {
	if h.setStatus == nil {
		h.state.StatusMessage = message
		return nil
	}
	return h.setStatus(message)
}
