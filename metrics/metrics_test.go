package metrics

import (
	"errors"
	"testing"
)

type recordingMeasurer struct {
	texts []string
	size  Size
	err   error
}

func (r *recordingMeasurer) Measure(text string, _ Font) (Size, error) {
	r.texts = append(r.texts, text)
	return r.size, r.err
}

func TestResolve_MeasuresPrefixWithNonBreakingSpaces(t *testing.T) {
	rec := &recordingMeasurer{size: Size{Width: 7, Height: 2}}

	got, err := Resolve(rec, "a b\nc d", 5, Font{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if want := (Point{X: 7, Y: 2}); got != want {
		t.Fatalf("point: got %+v, want %+v", got, want)
	}
	if want := "a b\nc"; rec.texts[0] != want {
		t.Fatalf("measured text: got %q, want %q", rec.texts[0], want)
	}
}

func TestResolve_ClampsOffset(t *testing.T) {
	rec := &recordingMeasurer{}

	if _, err := Resolve(rec, "héllo", 99, Font{}); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, err := Resolve(rec, "héllo", -3, Font{}); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got, want := rec.texts[0], "héllo"; got != want {
		t.Fatalf("clamped high: got %q, want %q", got, want)
	}
	if got := rec.texts[1]; got != "" {
		t.Fatalf("clamped low: got %q, want empty", got)
	}
}

func TestResolve_PropagatesUnavailable(t *testing.T) {
	if _, err := Resolve(nil, "x", 1, Font{}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("nil measurer: got %v, want ErrUnavailable", err)
	}

	rec := &recordingMeasurer{err: ErrUnavailable}
	if _, err := Resolve(rec, "x", 1, Font{}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("measurer error: got %v, want ErrUnavailable", err)
	}
}

func TestCellMeasurer_BoxModel(t *testing.T) {
	cases := []struct {
		name    string
		content string
		offset  int
		want    Point
	}{
		{name: "empty", content: "", offset: 0, want: Point{X: 0, Y: 1}},
		{name: "single line", content: "ab", offset: 2, want: Point{X: 2, Y: 1}},
		{name: "grown line", content: "ab\nc", offset: 4, want: Point{X: 2, Y: 2}},
		{name: "trailing spaces", content: "ab  ", offset: 4, want: Point{X: 4, Y: 1}},
		{name: "wide runes", content: "界界", offset: 2, want: Point{X: 4, Y: 1}},
		{name: "tab stop", content: "a\t", offset: 2, want: Point{X: 4, Y: 1}},
		{name: "prefix only", content: "abcdef", offset: 3, want: Point{X: 3, Y: 1}},
	}
	for _, tc := range cases {
		got, err := Resolve(CellMeasurer{}, tc.content, tc.offset, Font{})
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}
}
