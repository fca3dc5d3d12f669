// Package metrics resolves the on-screen position of a caret offset.
//
// The measurement itself is an injected capability (Measurer), so the menu
// and editor packages never depend on how text is rendered. CellMeasurer
// measures terminal cells; FaceMeasurer measures pixels with an OpenType face.
package metrics

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnavailable reports that no rendering surface can measure text right now.
// Callers retry later or keep their previous result.
var ErrUnavailable = errors.New("metrics unavailable")

// Point is a caret coordinate relative to the buffer's rendering origin.
type Point struct {
	X float64
	Y float64
}

// Size is the bounding box of rendered text.
type Size struct {
	Width  float64
	Height float64
}

// Font describes the face used by the live buffer. Measurements are only
// accurate when it matches the rendering font.
type Font struct {
	Family string
	Size   float64
}

// Measurer renders text off-screen with font and returns its bounding box.
//
// Text may contain '\n'. Width is the widest line, Height covers every line.
type Measurer interface {
	Measure(text string, font Font) (Size, error)
}

// CellSizer is implemented by measurers that can report the size of one
// terminal cell in their own units.
type CellSizer interface {
	CellSize(font Font) (Size, error)
}

const nbsp = "\u00a0"

// NonBreaking replaces every space with U+00A0 so leading and trailing spaces
// keep their full advance.
func NonBreaking(text string) string {
	return strings.ReplaceAll(text, " ", nbsp)
}

// Resolve returns the caret point for the rune offset in content.
//
// The prefix content[0:offset] is measured as a box: X is its width and Y its
// height. Offsets outside the content are clamped.
func Resolve(m Measurer, content string, offset int, font Font) (Point, error) {
	if m == nil {
		return Point{}, fmt.Errorf("%w: no measurer", ErrUnavailable)
	}
	runes := []rune(content)
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}

	size, err := m.Measure(NonBreaking(string(runes[:offset])), font)
	if err != nil {
		return Point{}, fmt.Errorf("resolve caret at %d: %w", offset, err)
	}
	return Point{X: size.Width, Y: size.Height}, nil
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
