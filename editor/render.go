package editor

import (
	"strings"

	"github.com/iw2rmb/slashpad/internal/grapheme"
)

// renderContent draws every buffer line and, when focused, the caret cell
// after the last grapheme.
func (m Model) renderContent() string {
	if m.buf == nil {
		return ""
	}
	lines := strings.Split(m.buf.Text(), "\n")
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if text := expandTabs(line); text != "" {
			sb.WriteString(m.cfg.Style.Text.Render(text))
		}
		if i == len(lines)-1 && m.focused {
			sb.WriteString(m.cfg.Style.Cursor.Render(" "))
		}
	}
	return sb.String()
}

// expandTabs replaces tabs with the spaces CellMeasurer accounts for, so the
// drawn columns match the measured anchor.
func expandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var sb strings.Builder
	col := 0
	for _, g := range grapheme.Split(line) {
		w := grapheme.CellWidth(g, col, grapheme.DefaultTabWidth)
		if g == "\t" {
			sb.WriteString(strings.Repeat(" ", w))
		} else {
			sb.WriteString(g)
		}
		col += w
	}
	return sb.String()
}
