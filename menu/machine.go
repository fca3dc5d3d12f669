package menu

import (
	"fmt"

	"github.com/iw2rmb/slashpad/buffer"
	"github.com/iw2rmb/slashpad/internal/logging"
	"github.com/iw2rmb/slashpad/internal/logging/events"
	"github.com/iw2rmb/slashpad/metrics"
)

// LocateFunc maps a buffer snapshot to the caret point the menu anchors to.
type LocateFunc func(buffer.State) (metrics.Point, error)

// Config configures a Machine.
type Config struct {
	// Options is the fixed, ordered option sequence. An empty sequence yields
	// a machine that never opens.
	Options []Option

	// Buffer receives committed insert text. A fresh empty buffer is used
	// when nil.
	Buffer *buffer.Buffer

	// Locate resolves the anchor on open and on buffer growth.
	Locate LocateFunc
}

// Machine is the menu state machine. It starts Closed and can be reused
// indefinitely.
//
// Every method runs to completion synchronously; a Machine is not safe for
// concurrent use.
type Machine struct {
	options []Option
	buf     *buffer.Buffer
	locate  LocateFunc
	state   State
}

func New(cfg Config) *Machine {
	buf := cfg.Buffer
	if buf == nil {
		buf = buffer.New("")
	}
	return &Machine{
		options: cloneOptions(cfg.Options),
		buf:     buf,
		locate:  cfg.Locate,
	}
}

func (m *Machine) State() State { return m.state }

func (m *Machine) Options() []Option { return cloneOptions(m.options) }

func (m *Machine) Buffer() *buffer.Buffer { return m.buf }

// Highlighted returns the highlighted option while the menu is open.
func (m *Machine) Highlighted() (Option, bool) {
	if !m.state.IsOpen() || !m.validIndex(m.state.Highlighted) {
		return Option{}, false
	}
	return m.options[m.state.Highlighted], true
}

// Trigger opens the menu anchored at the caret with the first option
// highlighted.
//
// It is a no-op while already open. It returns ErrEmptyOptionSet when there is
// nothing to show, and the locate error (menu stays Closed) when the anchor
// cannot be measured.
func (m *Machine) Trigger() error {
	if m.state.IsOpen() {
		events.Menu.OpenIgnored("already open")
		return nil
	}
	if err := ValidateOptions(m.options); err != nil {
		events.Menu.OpenIgnored(err.Error())
		return err
	}

	anchor, err := m.anchorFor(m.buf.Snapshot())
	if err != nil {
		events.Metrics.Unavailable("open", err)
		return err
	}

	m.state = State{Phase: Open, Anchor: anchor, Highlighted: 0}
	events.Menu.Open(anchor.X, anchor.Y, len(m.options))
	return nil
}

// Prev moves the highlight up, wrapping from the first option to the last.
func (m *Machine) Prev() bool {
	return m.moveHighlight(-1)
}

// Next moves the highlight down, wrapping from the last option to the first.
func (m *Machine) Next() bool {
	return m.moveHighlight(1)
}

// Select highlights option k without committing. Out-of-range indices are
// ignored.
func (m *Machine) Select(k int) bool {
	if !m.state.IsOpen() || !m.validIndex(k) {
		return false
	}
	from := m.state.Highlighted
	m.state.Highlighted = k
	events.Menu.Highlight(from, k)
	return from != k
}

// Commit appends the highlighted option's insert text and closes the menu.
//
// A commit while Closed is a no-op returning a zero Option. An out-of-range
// highlight closes the menu without touching the buffer and returns
// ErrIndexOutOfRange.
func (m *Machine) Commit() (Option, error) {
	if !m.state.IsOpen() {
		return Option{}, nil
	}
	idx := m.state.Highlighted
	if !m.validIndex(idx) {
		m.close("index out of range")
		err := fmt.Errorf("commit index %d of %d: %w", idx, len(m.options), ErrIndexOutOfRange)
		logging.Warn("menu commit treated as cancel", "error", err.Error())
		return Option{}, err
	}

	opt := m.options[idx]
	m.state = State{}
	m.buf.AppendAtCaret(opt.InsertText)
	events.Menu.Commit(opt.ID, idx)
	return opt, nil
}

// Cancel closes the menu without touching the buffer.
func (m *Machine) Cancel() bool {
	return m.close("cancel")
}

// Close dismisses the menu for reasons other than a user cancel, such as a
// buffer reset.
func (m *Machine) Close() bool {
	return m.close("dismiss")
}

// BufferChanged re-anchors an open menu when cur has grown relative to prev.
// A measurement failure keeps the previous anchor. It reports whether the
// anchor moved.
func (m *Machine) BufferChanged(prev, cur buffer.State) bool {
	if !m.state.IsOpen() || !buffer.HasGrown(prev, cur) {
		return false
	}
	anchor, err := m.anchorFor(cur)
	if err != nil {
		events.Metrics.Unavailable("reposition", err)
		return false
	}
	if anchor == m.state.Anchor {
		return false
	}
	m.state.Anchor = anchor
	events.Menu.Reposition(anchor.X, anchor.Y)
	return true
}

func (m *Machine) moveHighlight(delta int) bool {
	n := len(m.options)
	if !m.state.IsOpen() || n == 0 {
		return false
	}
	from := m.state.Highlighted
	next := ((from+delta)%n + n) % n
	m.state.Highlighted = next
	events.Menu.Highlight(from, next)
	return from != next
}

func (m *Machine) close(reason string) bool {
	if !m.state.IsOpen() {
		return false
	}
	m.state = State{}
	events.Menu.Cancel(reason)
	return true
}

func (m *Machine) anchorFor(s buffer.State) (metrics.Point, error) {
	if m.locate == nil {
		return metrics.Point{}, fmt.Errorf("%w: no locator", metrics.ErrUnavailable)
	}
	return m.locate(s)
}

func (m *Machine) validIndex(k int) bool {
	return k >= 0 && k < len(m.options)
}
