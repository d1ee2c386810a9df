package state

// Step sizes for line and page navigation
const (
	LineStep = 1
	PageStep = 10
)

// Direction represents a scroll direction
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Scrollable is implemented by every stateful collection the UI can move through
type Scrollable interface {
	ScrollUp(n int)
	ScrollDown(n int)
}

// StepSize resolves the magnitude of a step
func StepSize(page bool) int {
	if page {
		return PageStep
	}
	return LineStep
}

// HandleScroll applies a line or page step to s in the given direction
func HandleScroll(s Scrollable, dir Direction, page bool) {
	n := StepSize(page)
	if dir == DirectionUp {
		s.ScrollUp(n)
	} else {
		s.ScrollDown(n)
	}
}

// satSub returns a-b floored at zero
func satSub(a, b int) int {
	if a <= b {
		return 0
	}
	return a - b
}
