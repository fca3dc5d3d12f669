package buffer

import (
	"strings"
	"unicode/utf8"
)

// State is an immutable snapshot of a Buffer.
//
// CaretOffset is a rune offset in [0, RuneLen(Content)].
type State struct {
	Content     string
	CaretOffset int
}

// RuneLen returns the rune length of the snapshot content.
func (s State) RuneLen() int {
	return utf8.RuneCountInString(s.Content)
}

// LineBreaks returns the number of '\n' characters in the snapshot content.
func (s State) LineBreaks() int {
	return strings.Count(s.Content, "\n")
}

// HasGrown reports whether cur has more runes or more line breaks than prev.
//
// It only signals that the caret may have moved on screen; it says nothing
// about whether the content is otherwise related.
func HasGrown(prev, cur State) bool {
	if cur.RuneLen() > prev.RuneLen() {
		return true
	}
	return cur.LineBreaks() > prev.LineBreaks()
}
