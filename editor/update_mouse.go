package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/slashpad/menu"
)

// updateMouse forwards wheel events to the viewport and turns a left click on
// a popup row into select-then-commit. Coordinates are relative to the
// editor's top-left corner; hosts that draw chrome above it translate first.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if tea.MouseEvent(msg).IsWheel() {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if !m.focused || m.buf == nil {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	idx, ok := m.popupHitTest(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	before := m.machine.State()
	m.machine.Apply(menu.Action{Kind: menu.ActionSelect, Index: idx})
	res := m.machine.Apply(menu.Action{Kind: menu.ActionCommit})

	m.syncFromBuffer()
	if ev, ok := menuEventFor(before, res, m.machine.State()); ok {
		m.emitMenu(ev)
	}
	m.rebuildContent()
	return m, nil
}

// popupHitTest maps a screen cell to the option drawn there.
func (m Model) popupHitTest(x, y int) (int, bool) {
	layout, ok := m.menuPopupLayout()
	if !ok {
		return 0, false
	}
	x -= m.leftFrame()
	y -= m.topFrame()
	if x < layout.X || x >= layout.X+layout.Width {
		return 0, false
	}
	row := y - layout.Y
	if row < 0 || row >= len(layout.Indices) {
		return 0, false
	}
	return layout.Indices[row], true
}
