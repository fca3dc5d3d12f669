package menu

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// DefaultTrigger opens the menu when typed into a closed buffer.
const DefaultTrigger = '/'

// ShortcutCount is the number of literal index shortcuts. They always map to
// indices 0..ShortcutCount-1, whatever the option count.
const ShortcutCount = 3

// KeyMap defines the menu key bindings.
type KeyMap struct {
	Trigger key.Binding

	Prev, Next key.Binding
	Shortcuts  [ShortcutCount]key.Binding

	Commit key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the bindings with trigger as the opening character.
// A zero trigger falls back to DefaultTrigger.
func DefaultKeyMap(trigger rune) KeyMap {
	if trigger == 0 {
		trigger = DefaultTrigger
	}
	t := string(trigger)
	return KeyMap{
		Trigger: key.NewBinding(key.WithKeys(t), key.WithHelp(t, "open menu")),

		// ctrl+p/ctrl+n for terminals that eat arrow keys in popups.
		Prev: key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous option")),
		Next: key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next option")),

		Shortcuts: [ShortcutCount]key.Binding{
			key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "first option")),
			key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "second option")),
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "third option")),
		},

		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "insert option")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close menu")),
	}
}

// NormalizeKeyMap returns DefaultKeyMap(trigger) for a zero KeyMap and km
// otherwise.
func NormalizeKeyMap(km KeyMap, trigger rune) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap(trigger)
	}
	return km
}

// ShortHelp lists the bindings active while the menu is open.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Prev, km.Next, km.Commit, km.Cancel}
}
