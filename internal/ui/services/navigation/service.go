package navigation

import (
	"tokengrip/internal/ui/state"
)

// selectable is implemented by lists and tables
type selectable interface {
	Selected() (int, bool)
}

// offsetter is implemented by text panes
type offsetter interface {
	Offset() int
}

// Service turns navigation directions into line or page steps on a collection
type Service struct {
	onMove func(CursorMovedEvent)
}

// NewService creates a new navigation service
func NewService() *Service {
	return &Service{}
}

// OnMove registers a callback invoked whenever a step changes the position
func (s *Service) OnMove(fn func(CursorMovedEvent)) {
	s.onMove = fn
}

// Navigate applies direction to target and reports whether the position changed
func (s *Service) Navigate(target state.Scrollable, direction Direction) bool {
	if target == nil {
		return false
	}

	var (
		dir  state.Direction
		page bool
	)
	switch direction {
	case DirectionUp:
		dir = state.DirectionUp
	case DirectionDown:
		dir = state.DirectionDown
	case DirectionPageUp:
		dir, page = state.DirectionUp, true
	case DirectionPageDown:
		dir, page = state.DirectionDown, true
	default:
		return false
	}

	before := PositionOf(target)
	state.HandleScroll(target, dir, page)
	after := PositionOf(target)

	if before == after {
		return false
	}
	if s.onMove != nil {
		s.onMove(CursorMovedEvent{From: before, To: after})
	}
	return true
}

// PositionOf reads the selection of a list or table, or the offset of a text pane
func PositionOf(target state.Scrollable) Position {
	switch t := target.(type) {
	case selectable:
		i, ok := t.Selected()
		return Position{Index: i, Selected: ok}
	case offsetter:
		return Position{Index: t.Offset(), Selected: true}
	default:
		return Position{}
	}
}
