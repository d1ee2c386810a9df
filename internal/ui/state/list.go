package state

import "slices"

// List is an ordered collection with an optional single selection.
// Navigation wraps around at both ends.
type List[T any] struct {
	items    []T
	selected int // -1 when nothing is selected
}

// NewList creates an empty list
func NewList[T any]() *List[T] {
	return &List[T]{selected: -1}
}

// NewListWithItems creates a list holding a copy of items, selecting the
// first item when there is one
func NewListWithItems[T any](items []T) *List[T] {
	l := &List[T]{items: slices.Clone(items), selected: -1}
	if len(items) > 0 {
		l.selected = 0
	}
	return l
}

// Items returns a copy of the items held by the list
func (l *List[T]) Items() []T {
	return slices.Clone(l.items)
}

// Len returns the number of items
func (l *List[T]) Len() int {
	return len(l.items)
}

// Selected returns the selected index, if any
func (l *List[T]) Selected() (int, bool) {
	if l.selected < 0 || l.selected >= len(l.items) {
		return 0, false
	}
	return l.selected, true
}

// SelectedItem returns a copy of the selected item, if any
func (l *List[T]) SelectedItem() (T, bool) {
	var zero T
	i, ok := l.Selected()
	if !ok {
		return zero, false
	}
	return l.items[i], true
}

// Select sets the selection; out of range indexes clear it
func (l *List[T]) Select(i int) {
	if i < 0 || i >= len(l.items) {
		l.selected = -1
		return
	}
	l.selected = i
}

// ScrollDown moves the selection down by n, cycling back to the top past the end
func (l *List[T]) ScrollDown(n int) {
	if len(l.items) == 0 {
		return
	}
	i := 0
	if cur, ok := l.Selected(); ok {
		if cur >= satSub(len(l.items), n) {
			i = 0
		} else {
			i = cur + n
		}
	}
	l.selected = i
}

// ScrollUp moves the selection up by n, cycling to the end from the top
func (l *List[T]) ScrollUp(n int) {
	if len(l.items) == 0 {
		return
	}
	i := 0
	if cur, ok := l.Selected(); ok {
		if cur == 0 {
			i = satSub(len(l.items), n)
		} else {
			i = satSub(cur, n)
		}
	}
	l.selected = i
}

// HandleScroll applies a line or page step
func (l *List[T]) HandleScroll(dir Direction, page bool) {
	HandleScroll(l, dir, page)
}
