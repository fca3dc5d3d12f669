package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/slashpad/internal/logging"
	"github.com/iw2rmb/slashpad/menu"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	before := m.machine.State()
	res := m.machine.Apply(menu.Dispatch(before, msg, m.cfg.MenuKeyMap))
	if res.PassThrough() {
		m.insertFromKey(msg)
	}

	m.syncFromBuffer()
	if ev, ok := menuEventFor(before, res, m.machine.State()); ok {
		m.emitMenu(ev)
	}
	if res.Changed {
		m.rebuildContent()
	}
	return m, nil
}

// insertFromKey performs ordinary text entry. All text lands at the caret,
// which is always the end of the buffer.
func (m *Model) insertFromKey(msg tea.KeyMsg) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Paste):
		m.pasteFromClipboard()
	case key.Matches(msg, km.Copy):
		m.copyToClipboard()
	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, km.Enter):
		m.buf.AppendAtCaret("\n")
	case key.Matches(msg, km.Tab):
		m.buf.AppendAtCaret("\t")
	case msg.Type == tea.KeySpace:
		m.buf.AppendAtCaret(" ")
	case msg.Type == tea.KeyRunes && !msg.Alt:
		m.buf.AppendAtCaret(normalizeNewlines(string(msg.Runes)))
	}
}

func (m *Model) pasteFromClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		logging.Warn("clipboard read failed", "error", err.Error())
		return
	}
	m.buf.AppendAtCaret(normalizeNewlines(s))
}

func (m *Model) copyToClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	if err := m.cfg.Clipboard.WriteText(m.buf.Text()); err != nil {
		logging.Warn("clipboard write failed", "error", err.Error())
	}
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
