package editor

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/slashpad/menu"
	"github.com/iw2rmb/slashpad/metrics"
)

func TestModel_TriggerNavigateCommit(t *testing.T) {
	m := newSized(t, Config{Text: "Hi"}, 40, 10)

	m = press(m, runes("/"))
	st := m.MenuState()
	if !st.IsOpen() || st.Highlighted != 0 {
		t.Fatalf("after trigger: got %+v, want open at 0", st)
	}
	if got, want := st.Anchor, (metrics.Point{X: 2, Y: 1}); got != want {
		t.Fatalf("anchor: got %v, want %v", got, want)
	}
	if got, want := m.Buffer().Text(), "Hi"; got != want {
		t.Fatalf("trigger must not be inserted: got %q, want %q", got, want)
	}

	m = press(m, keyDown, keyDown)
	if got, want := m.MenuState().Highlighted, 2; got != want {
		t.Fatalf("highlighted: got %d, want %d", got, want)
	}

	m = press(m, keyEnter)
	if m.MenuState().IsOpen() {
		t.Fatalf("menu should close on commit")
	}
	if got, want := m.Buffer().Text(), "Hitest3"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestModel_ShortcutHighlightsThenCommit(t *testing.T) {
	m := newSized(t, Config{}, 40, 10)

	m = press(m, runes("/"), runes("e"))
	st := m.MenuState()
	if !st.IsOpen() || st.Highlighted != 1 {
		t.Fatalf("after shortcut: got %+v, want open at 1", st)
	}
	if got := m.Buffer().Text(); got != "" {
		t.Fatalf("shortcut must not insert: got %q", got)
	}

	m = press(m, keyEnter)
	if got, want := m.Buffer().Text(), "test2"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestModel_PrevWrapsThenCancelLeavesBuffer(t *testing.T) {
	m := newSized(t, Config{Text: "note"}, 40, 10)

	m = press(m, runes("/"), keyUp)
	if got, want := m.MenuState().Highlighted, 2; got != want {
		t.Fatalf("up from 0 should wrap: got %d, want %d", got, want)
	}
	ver := m.Buffer().Version()

	m = press(m, keyEsc)
	if m.MenuState().IsOpen() {
		t.Fatalf("menu should close on cancel")
	}
	if got, want := m.Buffer().Text(), "note"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := m.Buffer().Version(); got != ver {
		t.Fatalf("cancel mutated the buffer: version %d -> %d", ver, got)
	}
}

func TestModel_HostInsertionRepositionsOpenMenu(t *testing.T) {
	var menuEvents []MenuEvent
	m := newSized(t, Config{
		Text:   "Hi",
		OnMenu: func(ev MenuEvent) { menuEvents = append(menuEvents, ev) },
	}, 40, 10)

	m = press(m, runes("/"), keyDown)
	m.Buffer().AppendAtCaret("\nmore")
	m, _ = m.Update(struct{}{})

	st := m.MenuState()
	if !st.IsOpen() {
		t.Fatalf("menu should stay open across host insertion")
	}
	if got, want := st.Anchor, (metrics.Point{X: 4, Y: 2}); got != want {
		t.Fatalf("anchor: got %v, want %v", got, want)
	}
	if got, want := st.Highlighted, 1; got != want {
		t.Fatalf("highlight should survive reposition: got %d, want %d", got, want)
	}
	last := menuEvents[len(menuEvents)-1]
	if last.Kind != MenuRepositioned {
		t.Fatalf("last menu event: got %v, want %v", last.Kind, MenuRepositioned)
	}
}

func TestModel_HostResetClosesMenu(t *testing.T) {
	var kinds []MenuEventKind
	m := newSized(t, Config{
		Text:   "a long first line\nsecond",
		OnMenu: func(ev MenuEvent) { kinds = append(kinds, ev.Kind) },
	}, 40, 10)

	m = press(m, runes("/"))
	if got, want := m.MenuState().Anchor, (metrics.Point{X: 17, Y: 2}); got != want {
		t.Fatalf("anchor: got %v, want %v", got, want)
	}

	m.Buffer().Reset("")
	m, _ = m.Update(struct{}{})

	if st := m.MenuState(); st.IsOpen() {
		t.Fatalf("menu must not survive a buffer reset: got %+v", st)
	}
	if _, ok := m.menuPopupLayout(); ok {
		t.Fatalf("no popup should be laid out after a reset")
	}
	if got, want := kinds[len(kinds)-1], MenuCancelled; got != want {
		t.Fatalf("last menu event: got %v, want %v", got, want)
	}

	m = press(m, runes("/"))
	if got, want := m.MenuState().Anchor, (metrics.Point{X: 0, Y: 1}); got != want {
		t.Fatalf("reopened anchor: got %v, want %v", got, want)
	}
}

func TestModel_HostResetToLongerTextClosesMenu(t *testing.T) {
	m := newSized(t, Config{Text: "a"}, 40, 10)
	m = press(m, runes("/"))

	m.Buffer().Reset("a much longer replacement")
	m, _ = m.Update(struct{}{})

	if m.MenuState().IsOpen() {
		t.Fatalf("menu must not survive a reset that grows the text")
	}
}

func TestModel_AppendMsgRepositionsOpenMenu(t *testing.T) {
	m := newSized(t, Config{Text: "a"}, 40, 10)
	m = press(m, runes("/"))

	msg := Append("bcd")()
	m, _ = m.Update(msg)

	if got, want := m.Buffer().Text(), "abcd"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := m.MenuState().Anchor, (metrics.Point{X: 4, Y: 1}); got != want {
		t.Fatalf("anchor: got %v, want %v", got, want)
	}
}

func TestModel_TriggerBeforeSizeIsConsumedAndStaysClosed(t *testing.T) {
	m := New(Config{Text: "x", Options: testOptions()})

	m = press(m, runes("/"))
	if m.MenuState().IsOpen() {
		t.Fatalf("menu must not open on an unsized surface")
	}
	if got, want := m.Buffer().Text(), "x"; got != want {
		t.Fatalf("trigger must be consumed: got %q, want %q", got, want)
	}
}

func TestModel_EmptyOptionsNeverOpen(t *testing.T) {
	m := New(Config{Text: "x", Options: []menu.Option{}}).SetSize(20, 5)

	m = press(m, runes("/"))
	if m.MenuState().IsOpen() {
		t.Fatalf("menu must not open without options")
	}
	if got, want := m.Buffer().Text(), "x"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

type failingMeasurer struct{}

func (failingMeasurer) Measure(string, metrics.Font) (metrics.Size, error) {
	return metrics.Size{}, metrics.ErrUnavailable
}

func TestModel_MeasurerFailureAbortsOpen(t *testing.T) {
	m := newSized(t, Config{Text: "x", Measurer: failingMeasurer{}}, 20, 5)

	m = press(m, runes("/"))
	if m.MenuState().IsOpen() {
		t.Fatalf("menu must stay closed when metrics are unavailable")
	}
}

func TestModel_LocatorReportsUnsizedSurface(t *testing.T) {
	locate := newLocator(metrics.CellMeasurer{}, metrics.Font{}, &surface{})
	_, err := locate(New(Config{}).Buffer().Snapshot())
	if !errors.Is(err, metrics.ErrUnavailable) {
		t.Fatalf("error: got %v, want ErrUnavailable", err)
	}
}

func TestModel_CustomTrigger(t *testing.T) {
	m := newSized(t, Config{Trigger: ';'}, 20, 5)

	m = typeText(m, "a/")
	if m.MenuState().IsOpen() {
		t.Fatalf("default trigger must not open a custom-trigger menu")
	}
	if got, want := m.Buffer().Text(), "a/"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	m = typeText(m, ";")
	if !m.MenuState().IsOpen() {
		t.Fatalf("custom trigger should open the menu")
	}
}

func TestModel_SetTextClosesMenu(t *testing.T) {
	var kinds []MenuEventKind
	m := newSized(t, Config{
		Text:   "draft",
		OnMenu: func(ev MenuEvent) { kinds = append(kinds, ev.Kind) },
	}, 20, 5)

	m = press(m, runes("/"))
	m = m.SetText("fresh")

	if m.MenuState().IsOpen() {
		t.Fatalf("SetText should close the menu")
	}
	if got, want := m.Buffer().Text(), "fresh"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := m.Buffer().Caret(), 5; got != want {
		t.Fatalf("caret: got %d, want %d", got, want)
	}
	want := []MenuEventKind{MenuOpened, MenuCancelled}
	if len(kinds) != len(want) || kinds[0] != want[0] || kinds[1] != want[1] {
		t.Fatalf("menu events: got %v, want %v", kinds, want)
	}
}

func TestModel_OnChangeFiresOncePerVersion(t *testing.T) {
	var got []ChangeEvent
	m := newSized(t, Config{OnChange: func(ev ChangeEvent) { got = append(got, ev) }}, 20, 5)

	m = typeText(m, "ab")
	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(struct{}{})

	if len(got) != 3 {
		t.Fatalf("change events: got %d, want 3", len(got))
	}
	if !got[0].Grown || !got[1].Grown || got[2].Grown {
		t.Fatalf("grown flags: got %v %v %v, want true true false", got[0].Grown, got[1].Grown, got[2].Grown)
	}
	if got[2].State.Content != "a" || got[2].State.CaretOffset != 1 {
		t.Fatalf("last state: got %+v", got[2].State)
	}
	if got[2].Version != m.Buffer().Version() {
		t.Fatalf("version: got %d, want %d", got[2].Version, m.Buffer().Version())
	}
}

func TestModel_WindowSizeMsgResizes(t *testing.T) {
	m := New(Config{Options: testOptions()})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 4})

	m = press(m, runes("/"))
	if !m.MenuState().IsOpen() {
		t.Fatalf("menu should open once the surface is sized")
	}
}

func TestModel_OptionsAreCopies(t *testing.T) {
	m := New(Config{Options: testOptions()})
	opts := m.Options()
	opts[0].InsertText = "mutated"

	if got := m.Options()[0].InsertText; got != "test1" {
		t.Fatalf("options leaked: got %q", got)
	}
}
