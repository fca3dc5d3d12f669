package buffer

import (
	"unicode/utf8"

	"github.com/iw2rmb/slashpad/internal/grapheme"
)

// Buffer holds the content and caret of the text input.
//
// A Buffer is not safe for concurrent use; the editor owns it and mutates it
// from a single goroutine.
type Buffer struct {
	content string
	caret   int
	version uint64
	resets  uint64
}

// New returns a Buffer holding text with the caret at its end.
func New(text string) *Buffer {
	return &Buffer{
		content: text,
		caret:   utf8.RuneCountInString(text),
	}
}

// Snapshot returns the current content and caret.
func (b *Buffer) Snapshot() State {
	return State{Content: b.content, CaretOffset: b.caret}
}

// Text returns the current content.
func (b *Buffer) Text() string { return b.content }

// Caret returns the caret rune offset.
func (b *Buffer) Caret() int { return b.caret }

// Version increments on every mutation, including external ones.
func (b *Buffer) Version() uint64 { return b.version }

// Resets increments on every Reset. Observers compare it to tell a
// replacement apart from an ordinary edit.
func (b *Buffer) Resets() uint64 { return b.resets }

// Lines returns the number of logical lines (at least 1).
func (b *Buffer) Lines() int {
	return b.Snapshot().LineBreaks() + 1
}

// AppendAtCaret appends text at the end of the content and moves the caret to
// the new end. Each call appends again; nothing is deduplicated.
func (b *Buffer) AppendAtCaret(text string) State {
	if text == "" {
		return b.Snapshot()
	}
	b.content += text
	b.caret = utf8.RuneCountInString(b.content)
	b.version++
	return b.Snapshot()
}

// DeleteBackward removes the last grapheme cluster, if any.
func (b *Buffer) DeleteBackward() State {
	if b.content == "" {
		return b.Snapshot()
	}
	b.content = grapheme.TrimLast(b.content)
	b.caret = utf8.RuneCountInString(b.content)
	b.version++
	return b.Snapshot()
}

// Reset replaces the content and moves the caret to the end.
func (b *Buffer) Reset(text string) State {
	b.content = text
	b.caret = utf8.RuneCountInString(text)
	b.version++
	b.resets++
	return b.Snapshot()
}
