package state

import "slices"

// TabRoute pairs a tab title with the destination it leads to
type TabRoute[R any] struct {
	Title string
	Route R
}

// Tabs is a fixed, non-empty cycle of tabs with one current tab
type Tabs[R any] struct {
	items []TabRoute[R]
	index int
}

// NewTabs creates a tab cycle positioned on the first tab.
// It panics when items is empty.
func NewTabs[R any](items []TabRoute[R]) *Tabs[R] {
	if len(items) == 0 {
		panic("state: NewTabs requires at least one tab")
	}
	return &Tabs[R]{items: slices.Clone(items)}
}

// Items returns a copy of the tabs in order
func (t *Tabs[R]) Items() []TabRoute[R] {
	return slices.Clone(t.items)
}

// Index returns the current tab index
func (t *Tabs[R]) Index() int {
	return t.index
}

// SetIndex makes the tab at index current and returns it.
// The index must be in range.
func (t *Tabs[R]) SetIndex(index int) TabRoute[R] {
	t.index = index
	return t.items[t.index]
}

// Active returns the current tab
func (t *Tabs[R]) Active() TabRoute[R] {
	return t.items[t.index]
}

// ActiveRoute returns the destination of the current tab
func (t *Tabs[R]) ActiveRoute() R {
	return t.items[t.index].Route
}

// Next advances to the following tab, wrapping to the first
func (t *Tabs[R]) Next() {
	t.index = (t.index + 1) % len(t.items)
}

// Previous moves to the preceding tab, wrapping to the last
func (t *Tabs[R]) Previous() {
	if t.index > 0 {
		t.index--
	} else {
		t.index = len(t.items) - 1
	}
}
