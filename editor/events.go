package editor

import (
	"github.com/iw2rmb/slashpad/buffer"
	"github.com/iw2rmb/slashpad/menu"
)

// ChangeEvent describes an observed buffer change.
type ChangeEvent struct {
	Version uint64
	State   buffer.State

	// Grown is true when the content got longer or gained a line break.
	Grown bool
}

// MenuEventKind names a menu transition.
type MenuEventKind int

const (
	MenuOpened MenuEventKind = iota
	MenuHighlighted
	MenuCommitted
	MenuCancelled
	MenuRepositioned
)

func (k MenuEventKind) String() string {
	switch k {
	case MenuOpened:
		return "opened"
	case MenuHighlighted:
		return "highlighted"
	case MenuCommitted:
		return "committed"
	case MenuCancelled:
		return "cancelled"
	case MenuRepositioned:
		return "repositioned"
	default:
		return "unknown"
	}
}

// MenuEvent is emitted after a menu transition. Option is set for
// MenuCommitted.
type MenuEvent struct {
	Kind   MenuEventKind
	State  menu.State
	Option menu.Option
}

func buildChangeEvent(ver uint64, prev, cur buffer.State) ChangeEvent {
	return ChangeEvent{
		Version: ver,
		State:   cur,
		Grown:   buffer.HasGrown(prev, cur),
	}
}

// menuEventFor maps an applied result to the event it produces, if any.
func menuEventFor(before menu.State, res menu.Result, after menu.State) (MenuEvent, bool) {
	switch {
	case res.Inserted:
		return MenuEvent{Kind: MenuCommitted, State: after, Option: res.Committed}, true
	case !res.Changed:
		return MenuEvent{}, false
	case !before.IsOpen() && after.IsOpen():
		return MenuEvent{Kind: MenuOpened, State: after}, true
	case before.IsOpen() && !after.IsOpen():
		return MenuEvent{Kind: MenuCancelled, State: after}, true
	default:
		return MenuEvent{Kind: MenuHighlighted, State: after}, true
	}
}
