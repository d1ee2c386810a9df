package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectedIndex[T any](t *testing.T, l *List[T]) int {
	t.Helper()
	i, ok := l.Selected()
	require.True(t, ok, "list should have a selection")
	return i
}

func TestNewListSelection(t *testing.T) {
	empty := NewList[string]()
	_, ok := empty.Selected()
	assert.False(t, ok)
	assert.Equal(t, 0, empty.Len())

	none := NewListWithItems([]string{})
	_, ok = none.Selected()
	assert.False(t, ok)

	l := NewListWithItems([]string{"a", "b"})
	assert.Equal(t, 0, selectedIndex(t, l))
}

func TestListScrollDownWraps(t *testing.T) {
	l := NewListWithItems([]string{"a", "b", "c"})

	l.ScrollDown(1)
	assert.Equal(t, 1, selectedIndex(t, l))
	l.ScrollDown(1)
	assert.Equal(t, 2, selectedIndex(t, l))
	l.ScrollDown(1)
	assert.Equal(t, 0, selectedIndex(t, l), "stepping past the end should land on the top")
}

func TestListScrollUpWraps(t *testing.T) {
	l := NewListWithItems([]string{"a", "b", "c"})

	l.ScrollUp(1)
	assert.Equal(t, 2, selectedIndex(t, l))
	l.ScrollUp(1)
	assert.Equal(t, 1, selectedIndex(t, l))
	l.ScrollUp(10)
	assert.Equal(t, 0, selectedIndex(t, l))
	l.ScrollUp(10)
	assert.Equal(t, 0, selectedIndex(t, l), "page up from the top floors at zero")
}

func TestListHandleScroll(t *testing.T) {
	l := NewListWithItems([]string{"a", "b", "c"})

	l.HandleScroll(DirectionDown, true)
	assert.Equal(t, 0, selectedIndex(t, l), "page down wraps when the list is shorter than a page")

	l.Select(2)
	l.HandleScroll(DirectionDown, false)
	assert.Equal(t, 0, selectedIndex(t, l))

	l.HandleScroll(DirectionUp, false)
	assert.Equal(t, 2, selectedIndex(t, l))
}

func TestListWrapRule(t *testing.T) {
	for length := 1; length <= 12; length++ {
		items := make([]int, length)
		for i := 0; i < length; i++ {
			for _, n := range []int{LineStep, 3, PageStep} {
				l := NewListWithItems(items)
				l.Select(i)
				l.ScrollDown(n)
				want := i + n
				if i >= satSub(length, n) {
					want = 0
				}
				assert.Equal(t, want, selectedIndex(t, l), "down len=%d i=%d n=%d", length, i, n)

				l.Select(i)
				l.ScrollUp(n)
				want = satSub(i, n)
				if i == 0 {
					want = satSub(length, n)
				}
				assert.Equal(t, want, selectedIndex(t, l), "up len=%d i=%d n=%d", length, i, n)
			}
		}
	}
}

func TestListEmptyScrollKeepsNoSelection(t *testing.T) {
	l := NewList[int]()
	l.ScrollDown(1)
	l.ScrollUp(PageStep)
	_, ok := l.Selected()
	assert.False(t, ok)
}

func TestListUnselectedScrollSelectsTop(t *testing.T) {
	l := NewListWithItems([]string{"a", "b", "c"})
	l.Select(-1)
	_, ok := l.Selected()
	require.False(t, ok)

	l.ScrollDown(1)
	assert.Equal(t, 0, selectedIndex(t, l))

	l.Select(-1)
	l.ScrollUp(1)
	assert.Equal(t, 0, selectedIndex(t, l))
}

func TestListSelectedItem(t *testing.T) {
	l := NewListWithItems([]string{"a", "b"})
	l.ScrollDown(1)
	item, ok := l.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "b", item)

	_, ok = NewList[string]().SelectedItem()
	assert.False(t, ok)
}

func TestListHoldsItsOwnItems(t *testing.T) {
	items := []string{"a", "b"}
	l := NewListWithItems(items)

	items[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, l.Items())

	got := l.Items()
	got[1] = "changed"
	item, _ := l.SelectedItem()
	assert.Equal(t, "a", item)
	assert.Equal(t, []string{"a", "b"}, l.Items())
}
