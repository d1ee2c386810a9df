package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the normal mode key bindings
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	NextTab       key.Binding
	PreviousTab   key.Binding
	NextBlock     key.Binding
	PreviousBlock key.Binding
	Tab1          key.Binding
	Tab2          key.Binding
	Tab3          key.Binding
	Tab4          key.Binding
	Edit          key.Binding
	Copy          key.Binding
	Pager         key.Binding
	Load          key.Binding
	Theme         key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:        key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:      key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		NextTab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next screen")),
		PreviousTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous screen")),
		NextBlock:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next block")),
		PreviousBlock: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous block")),
		Tab1:          key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "decoder")),
		Tab2:          key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "claims")),
		Tab3:          key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "history")),
		Tab4:          key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "help")),
		Edit:          key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Copy:          key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Pager:         key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view in pager")),
		Load:          key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load token")),
		Theme:         key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.NextBlock, k.Up, k.Down, k.Edit, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.NextTab, k.PreviousTab, k.NextBlock, k.PreviousBlock},
		{k.Tab1, k.Tab2, k.Tab3, k.Tab4},
		{k.Edit, k.Copy, k.Pager, k.Load, k.Theme, k.Help, k.Quit},
	}
}

// Entries lists every binding as key/description pairs
func (k KeyMap) Entries() [][2]string {
	var out [][2]string
	for _, group := range k.FullHelp() {
		for _, b := range group {
			h := b.Help()
			out = append(out, [2]string{h.Key, h.Desc})
		}
	}
	return out
}
