// Package editor provides a Bubble Tea text surface with a slash-command
// menu, backed by the buffer and menu packages.
//
// The package is responsible for input routing, viewport behavior, popup
// placement at the caret, and host integration hooks (change and menu
// events, clipboard).
package editor
