package buffer

import "testing"

func TestHasGrown(t *testing.T) {
	cases := []struct {
		name      string
		prev, cur State
		want      bool
	}{
		{name: "equal", prev: State{Content: "ab"}, cur: State{Content: "ab"}, want: false},
		{name: "longer", prev: State{Content: "ab"}, cur: State{Content: "abc"}, want: true},
		{name: "new line", prev: State{Content: "ab"}, cur: State{Content: "ab\nc"}, want: true},
		{name: "shorter", prev: State{Content: "abc"}, cur: State{Content: "ab"}, want: false},
		{name: "same length more breaks", prev: State{Content: "abc"}, cur: State{Content: "a\n\n"}, want: true},
		{name: "multibyte same runes", prev: State{Content: "ab"}, cur: State{Content: "界界"}, want: false},
	}
	for _, tc := range cases {
		if got := HasGrown(tc.prev, tc.cur); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestState_Counters(t *testing.T) {
	s := State{Content: "a\nbé\n"}
	if got, want := s.RuneLen(), 5; got != want {
		t.Fatalf("rune len: got %d, want %d", got, want)
	}
	if got, want := s.LineBreaks(), 2; got != want {
		t.Fatalf("line breaks: got %d, want %d", got, want)
	}
}
