package navigation

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
)

// Position is a snapshot of where a collection's cursor is
type Position struct {
	Index    int
	Selected bool
}

// Event types for navigation changes
type CursorMovedEvent struct {
	From Position
	To   Position
}
