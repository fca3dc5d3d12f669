// Package grapheme wraps uniseg and go-runewidth with the cluster and
// terminal-cell helpers shared by the buffer and metrics packages.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the tab stop distance used when callers pass <= 0.
const DefaultTabWidth = 4

// Split returns the grapheme clusters of text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// TrimLast removes the final grapheme cluster of text.
func TrimLast(text string) string {
	if text == "" {
		return ""
	}
	g := uniseg.NewGraphemes(text)
	last := 0
	for g.Next() {
		start, _ := g.Positions()
		last = start
	}
	return text[:last]
}

// CellWidth returns the terminal-cell advance of a single cluster that starts
// at visual column col. Tabs advance to the next tab stop.
func CellWidth(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			tabWidth = DefaultTabWidth
		}
		if col < 0 {
			col = 0
		}
		return tabWidth - col%tabWidth
	}

	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		// runewidth reports zero for some emoji sequences uniseg understands.
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// LineWidth returns the cell width of a single logical line (no '\n').
func LineWidth(line string, tabWidth int) int {
	col := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		col += CellWidth(g.Str(), col, tabWidth)
	}
	return col
}
