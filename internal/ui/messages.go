package ui

import (
	"tokengrip/internal/eventbus"
	"tokengrip/internal/token"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tokenDecodedMsg contains the result of decoding the submitted token
// against the secret current at submission
type tokenDecodedMsg struct {
	raw     string
	secret  string
	decoded *token.Decoded
	err     error
}

// copyResultMsg contains the result of a clipboard write
type copyResultMsg struct {
	what string
	err  error
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	err error
}

// clearStatusMsg clears the status bar
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
