// Package buffer implements the text model behind the slash menu.
//
// Offsets are counted in runes. The caret always sits at the end of the
// content: every insertion appends at the tail.
package buffer
