package metrics

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Built-in families registered by NewFaceMeasurer.
const (
	FamilyGo       = "go"
	FamilyGoMono   = "go-mono"
	FamilyGoBold   = "go-bold"
	FamilyGoItalic = "go-italic"
)

const faceTabStop = 4

// FaceMeasurer measures text in pixels using parsed OpenType fonts.
//
// Fonts are parsed once at registration. Each Measure call opens a face at the
// requested size and closes it before returning.
type FaceMeasurer struct {
	mu    sync.RWMutex
	fonts map[string]*opentype.Font
	dpi   float64
}

// NewFaceMeasurer returns a measurer with the Go font families registered.
func NewFaceMeasurer() *FaceMeasurer {
	f := &FaceMeasurer{fonts: map[string]*opentype.Font{}, dpi: 72}
	builtin := map[string][]byte{
		FamilyGo:       goregular.TTF,
		FamilyGoMono:   gomono.TTF,
		FamilyGoBold:   gobold.TTF,
		FamilyGoItalic: goitalic.TTF,
	}
	for family, ttf := range builtin {
		// A bundled font that fails to parse simply stays unavailable.
		_ = f.Register(family, ttf)
	}
	return f
}

// Register parses ttf and makes it available under family.
func (f *FaceMeasurer) Register(family string, ttf []byte) error {
	family = normalizeFamily(family)
	if family == "" {
		return fmt.Errorf("register font: empty family")
	}
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("register font %q: %w", family, err)
	}
	f.mu.Lock()
	f.fonts[family] = parsed
	f.mu.Unlock()
	return nil
}

// Families lists the registered family names in sorted order.
func (f *FaceMeasurer) Families() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, 0, len(f.fonts))
	for name := range f.fonts {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (f *FaceMeasurer) Measure(text string, desc Font) (Size, error) {
	face, err := f.acquire(desc)
	if err != nil {
		return Size{}, err
	}
	defer face.Close()

	lines := splitLines(strings.ReplaceAll(text, "\t", strings.Repeat(nbsp, faceTabStop)))
	var widest fixed.Int26_6
	for _, line := range lines {
		if w := font.MeasureString(face, line); w > widest {
			widest = w
		}
	}
	lineHeight := face.Metrics().Height
	return Size{
		Width:  fixedToFloat(widest),
		Height: float64(len(lines)) * fixedToFloat(lineHeight),
	}, nil
}

// CellSize reports the advance of "M" and the line height for desc.
func (f *FaceMeasurer) CellSize(desc Font) (Size, error) {
	face, err := f.acquire(desc)
	if err != nil {
		return Size{}, err
	}
	defer face.Close()

	return Size{
		Width:  fixedToFloat(font.MeasureString(face, "M")),
		Height: fixedToFloat(face.Metrics().Height),
	}, nil
}

func (f *FaceMeasurer) acquire(desc Font) (font.Face, error) {
	if desc.Size <= 0 {
		return nil, fmt.Errorf("%w: font size %v", ErrUnavailable, desc.Size)
	}
	family := normalizeFamily(desc.Family)
	f.mu.RLock()
	parsed, ok := f.fonts[family]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: unknown font family %q", ErrUnavailable, desc.Family)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    desc.Size,
		DPI:     f.dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open face %q: %v", ErrUnavailable, family, err)
	}
	return face, nil
}

func normalizeFamily(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
