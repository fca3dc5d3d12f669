package metrics

import "github.com/iw2rmb/slashpad/internal/grapheme"

// CellMeasurer measures text in terminal cells. Every line is one cell tall
// and the font descriptor is ignored.
type CellMeasurer struct {
	// TabWidth defaults to grapheme.DefaultTabWidth.
	TabWidth int
}

func (c CellMeasurer) Measure(text string, _ Font) (Size, error) {
	lines := splitLines(text)
	widest := 0
	for _, line := range lines {
		if w := grapheme.LineWidth(line, c.TabWidth); w > widest {
			widest = w
		}
	}
	return Size{Width: float64(widest), Height: float64(len(lines))}, nil
}

func (CellMeasurer) CellSize(Font) (Size, error) {
	return Size{Width: 1, Height: 1}, nil
}
