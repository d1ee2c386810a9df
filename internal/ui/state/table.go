package state

import "slices"

// Table is an ordered collection of rows with an optional single selection.
// Navigation is clamped and replacing the rows keeps the selected position
// whenever it still exists.
type Table[T any] struct {
	items    []T
	selected int // -1 when nothing is selected
}

// NewTable creates an empty table
func NewTable[T any]() *Table[T] {
	return &Table[T]{selected: -1}
}

// NewTableWithItems creates a table selecting the first row when there is one
func NewTableWithItems[T any](items []T) *Table[T] {
	t := NewTable[T]()
	t.SetItems(items)
	return t
}

// SetItems installs a copy of items and re-derives the selection
func (t *Table[T]) SetItems(items []T) {
	t.items = slices.Clone(items)
	n := len(items)
	switch {
	case n == 0:
		t.selected = -1
	case t.selected < 0:
		t.selected = 0
	case t.selected >= n:
		t.selected = n - 1
	}
}

// Items returns a copy of the rows held by the table
func (t *Table[T]) Items() []T {
	return slices.Clone(t.items)
}

// Len returns the number of rows
func (t *Table[T]) Len() int {
	return len(t.items)
}

// Selected returns the selected row index, if any
func (t *Table[T]) Selected() (int, bool) {
	if t.selected < 0 || t.selected >= len(t.items) {
		return 0, false
	}
	return t.selected, true
}

// Select sets the selection; out of range indexes clear it
func (t *Table[T]) Select(i int) {
	if i < 0 || i >= len(t.items) {
		t.selected = -1
		return
	}
	t.selected = i
}

// SelectedItem returns a copy of the selected row so callers never hold a
// reference into rows that a refresh may replace
func (t *Table[T]) SelectedItem() (T, bool) {
	var zero T
	i, ok := t.Selected()
	if !ok {
		return zero, false
	}
	return t.items[i], true
}

// ScrollDown moves the selection down by n, sticking at the last row
func (t *Table[T]) ScrollDown(n int) {
	i, ok := t.Selected()
	if !ok {
		return
	}
	if i+n < len(t.items) {
		t.selected = i + n
	} else {
		t.selected = len(t.items) - 1
	}
}

// ScrollUp moves the selection up by n, sticking at the first row
func (t *Table[T]) ScrollUp(n int) {
	i, ok := t.Selected()
	if !ok || i == 0 {
		return
	}
	t.selected = satSub(i, n)
}

// HandleScroll applies a line or page step
func (t *Table[T]) HandleScroll(dir Direction, page bool) {
	HandleScroll(t, dir, page)
}
