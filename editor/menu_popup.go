package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/slashpad/menu"
)

// menuPopupLayout is the popup geometry in viewport-local cells. View and
// the mouse hit test both derive from it.
type menuPopupLayout struct {
	X, Y  int
	Width int

	// Indices lists the option index drawn on each popup row.
	Indices []int
}

type menuPopupRender struct {
	View string
}

func (m Model) menuPopupLayout() (menuPopupLayout, bool) {
	state := m.machine.State()
	options := m.machine.Options()
	if !state.IsOpen() || len(options) == 0 {
		return menuPopupLayout{}, false
	}

	viewportWidth := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	viewportHeight := m.visibleRowCount()
	if viewportWidth <= 0 || viewportHeight <= 0 {
		return menuPopupLayout{}, false
	}

	// The anchor sits on the row below the caret line.
	anchorX, belowRow := m.anchorCell(state.Anchor)
	caretRow := belowRow - 1 - m.viewport.YOffset
	if caretRow < 0 || caretRow >= viewportHeight {
		return menuPopupLayout{}, false
	}

	targetRows := minInt(m.cfg.MenuMaxRows, len(options))
	belowAvail := maxInt(viewportHeight-(caretRow+1), 0)
	aboveAvail := maxInt(caretRow, 0)
	showBelow := true
	rowCount := targetRows
	if rowCount > belowAvail {
		if aboveAvail >= rowCount {
			showBelow = false
		} else if aboveAvail > belowAvail {
			showBelow = false
			rowCount = aboveAvail
		} else {
			rowCount = belowAvail
		}
	}
	if rowCount <= 0 {
		return menuPopupLayout{}, false
	}

	// Scroll the option window so the highlighted row is always drawn.
	start := 0
	if state.Highlighted >= rowCount {
		start = state.Highlighted - rowCount + 1
	}
	indices := make([]int, 0, rowCount)
	for i := start; i < start+rowCount && i < len(options); i++ {
		indices = append(indices, i)
	}

	widthCap := minInt(m.cfg.MenuMaxWidth, viewportWidth)
	width := 0
	for _, idx := range indices {
		if w := runewidth.StringWidth(m.menuRowText(idx, options[idx])); w > width {
			width = w
		}
	}
	if width > widthCap {
		width = widthCap
	}
	if width <= 0 {
		return menuPopupLayout{}, false
	}

	y := caretRow + 1
	if !showBelow {
		y = caretRow - len(indices)
	}
	y = clampInt(y, 0, maxInt(viewportHeight-len(indices), 0))
	x := clampInt(anchorX, 0, maxInt(viewportWidth-width, 0))

	return menuPopupLayout{X: x, Y: y, Width: width, Indices: indices}, true
}

func (m Model) menuPopupRender(base string) (menuPopupRender, bool) {
	layout, ok := m.menuPopupLayout()
	if !ok {
		return menuPopupRender{}, false
	}

	options := m.machine.Options()
	highlighted := m.machine.State().Highlighted
	rows := make([]string, 0, len(layout.Indices))
	for _, idx := range layout.Indices {
		rows = append(rows, m.renderMenuRow(idx, options[idx], idx == highlighted, layout.Width))
	}

	return menuPopupRender{
		View: overlay.Composite(
			strings.Join(rows, "\n"),
			base,
			overlay.Left,
			overlay.Top,
			m.leftFrame()+layout.X,
			m.topFrame()+layout.Y,
		),
	}, true
}

// menuRowText is the unstyled row: " <hint> <label> ".
func (m Model) menuRowText(idx int, opt menu.Option) string {
	return " " + m.shortcutHint(idx) + " " + sanitizeLabel(opt.Label) + " "
}

func (m Model) renderMenuRow(idx int, opt menu.Option, selected bool, width int) string {
	base := m.cfg.Style.MenuItem
	if selected {
		base = m.cfg.Style.MenuSelected
	}
	hint := m.shortcutHint(idx)
	hintStyle := m.cfg.Style.MenuHint.Inherit(base)

	head := " " + hint + " "
	headWidth := runewidth.StringWidth(head)
	if headWidth >= width {
		return base.Render(runewidth.FillRight(runewidth.Truncate(head, width, ""), width))
	}

	label := runewidth.Truncate(sanitizeLabel(opt.Label)+" ", width-headWidth, "…")
	label = runewidth.FillRight(label, width-headWidth)

	var sb strings.Builder
	sb.WriteString(base.Render(" "))
	sb.WriteString(hintStyle.Render(hint))
	sb.WriteString(base.Render(" " + label))
	return sb.String()
}

// shortcutHint returns the key drawn before option idx, or padding when the
// index has no shortcut.
func (m Model) shortcutHint(idx int) string {
	pad := 0
	for _, b := range m.cfg.MenuKeyMap.Shortcuts {
		if w := runewidth.StringWidth(b.Help().Key); w > pad {
			pad = w
		}
	}
	hint := ""
	if idx < len(m.cfg.MenuKeyMap.Shortcuts) && m.cfg.MenuKeyMap.Shortcuts[idx].Enabled() {
		hint = m.cfg.MenuKeyMap.Shortcuts[idx].Help().Key
	}
	return runewidth.FillRight(hint, pad)
}

func sanitizeLabel(s string) string {
	return strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(s)
}

func (m Model) leftFrame() int {
	s := m.viewport.Style
	return s.GetMarginLeft() + s.GetBorderLeftSize() + s.GetPaddingLeft()
}

func (m Model) topFrame() int {
	s := m.viewport.Style
	return s.GetMarginTop() + s.GetBorderTopSize() + s.GetPaddingTop()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
