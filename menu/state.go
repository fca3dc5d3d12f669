package menu

import "github.com/iw2rmb/slashpad/metrics"

// Phase is the menu visibility.
type Phase uint8

const (
	Closed Phase = iota
	Open
)

func (p Phase) String() string {
	switch p {
	case Closed:
		return "closed"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}

// State is a snapshot of the menu. Anchor and Highlighted are meaningful only
// while Phase is Open; Highlighted is then always a valid option index.
type State struct {
	Phase       Phase
	Anchor      metrics.Point
	Highlighted int
}

func (s State) IsOpen() bool { return s.Phase == Open }
