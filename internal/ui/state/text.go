package state

import "strings"

// textGuard is the number of trailing lines kept below the furthest offset
const textGuard = 2

// Text is a block of text split into lines with a vertical viewport offset
type Text struct {
	lines  []string
	offset int
}

// NewText splits s into lines with the viewport at the top
func NewText(s string) *Text {
	return &Text{lines: strings.Split(s, "\n")}
}

// Text rejoins the lines into the original block
func (t *Text) Text() string {
	return strings.Join(t.lines, "\n")
}

// Lines returns the split lines
func (t *Text) Lines() []string {
	return t.lines
}

// Offset returns the index of the first visible line
func (t *Text) Offset() int {
	return t.offset
}

// ScrollDown advances the viewport by n while enough lines remain below it
func (t *Text) ScrollDown(n int) {
	if t.offset < satSub(len(t.lines), n+textGuard) {
		t.offset += n
	}
}

// ScrollUp moves the viewport back by n, stopping at the top
func (t *Text) ScrollUp(n int) {
	if t.offset > 0 {
		t.offset = satSub(t.offset, n)
	}
}

// HandleScroll applies a line or page step
func (t *Text) HandleScroll(dir Direction, page bool) {
	HandleScroll(t, dir, page)
}
