package menu

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ActionKind is the transition a key event maps to.
type ActionKind uint8

const (
	// ActionPassThrough leaves the key to ordinary text entry.
	ActionPassThrough ActionKind = iota
	ActionOpen
	ActionPrev
	ActionNext
	// ActionSelect highlights Action.Index without committing.
	ActionSelect
	ActionCommit
	ActionCancel
	// ActionSwallow drops the key: the buffer is read-only while the menu is open.
	ActionSwallow
)

func (k ActionKind) String() string {
	switch k {
	case ActionPassThrough:
		return "pass-through"
	case ActionOpen:
		return "open"
	case ActionPrev:
		return "prev"
	case ActionNext:
		return "next"
	case ActionSelect:
		return "select"
	case ActionCommit:
		return "commit"
	case ActionCancel:
		return "cancel"
	case ActionSwallow:
		return "swallow"
	default:
		return "unknown"
	}
}

// Action is the single transition produced by one key event.
type Action struct {
	Kind  ActionKind
	Index int
}

// Dispatch maps one key event to exactly one Action. It depends only on s and
// msg and has no side effects.
//
// Rules, in order:
//  1. Closed and the typed character is the trigger: ActionOpen. The trigger
//     character is consumed, not inserted.
//  2. Open: navigation, shortcut, commit and cancel keys map to their action;
//     every other key is swallowed.
//  3. Closed otherwise: ActionPassThrough.
func Dispatch(s State, msg tea.KeyMsg, km KeyMap) Action {
	if !s.IsOpen() {
		if isTrigger(msg, km) {
			return Action{Kind: ActionOpen}
		}
		return Action{Kind: ActionPassThrough}
	}

	switch {
	case key.Matches(msg, km.Prev):
		return Action{Kind: ActionPrev}
	case key.Matches(msg, km.Next):
		return Action{Kind: ActionNext}
	case key.Matches(msg, km.Commit):
		return Action{Kind: ActionCommit}
	case key.Matches(msg, km.Cancel):
		return Action{Kind: ActionCancel}
	}
	for i, b := range km.Shortcuts {
		if key.Matches(msg, b) {
			return Action{Kind: ActionSelect, Index: i}
		}
	}
	return Action{Kind: ActionSwallow}
}

// isTrigger only accepts a composed printable character; pasted text and
// alt-modified keys never open the menu.
func isTrigger(msg tea.KeyMsg, km KeyMap) bool {
	if msg.Type != tea.KeyRunes || msg.Alt || msg.Paste || len(msg.Runes) != 1 {
		return false
	}
	return key.Matches(msg, km.Trigger)
}
