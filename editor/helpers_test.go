package editor

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/slashpad/menu"
)

func testOptions() []menu.Option {
	return []menu.Option{
		{ID: "test1", Label: "This is a test of option 1", InsertText: "test1"},
		{ID: "test2", Label: "This is a test of option 2", InsertText: "test2"},
		{ID: "test3", Label: "This is a test of option 3", InsertText: "test3"},
	}
}

func plainStyle() Style {
	return Style{
		Text:         lipgloss.NewStyle(),
		Cursor:       lipgloss.NewStyle(),
		MenuItem:     lipgloss.NewStyle(),
		MenuSelected: lipgloss.NewStyle(),
		MenuHint:     lipgloss.NewStyle(),
	}
}

// newSized returns a focused editor with a drawable surface.
func newSized(t *testing.T, cfg Config, width, height int) Model {
	t.Helper()
	if cfg.Options == nil {
		cfg.Options = testOptions()
	}
	return New(cfg).SetSize(width, height)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, msgs ...tea.KeyMsg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(runes(string(r)))
	}
	return m
}

func stripANSI(s string) string { return ansi.Strip(s) }

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("line count: got %d, want %d (%q)", len(got), len(want), got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) ReadText() (string, error) { return c.text, c.err }

func (c *fakeClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.text = s
	return nil
}

var errClipboard = errors.New("clipboard offline")

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)
