package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the text entry bindings used while the menu is closed.
// Menu navigation lives in menu.KeyMap.
type KeyMap struct {
	Backspace key.Binding
	Enter     key.Binding
	Tab       key.Binding
	Paste     key.Binding

	// Copy puts the whole buffer on the clipboard.
	Copy key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "tab")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Copy:      key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "copy all")),
	}
}
