package editor

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/slashpad/buffer"
	"github.com/iw2rmb/slashpad/internal/logging/events"
	"github.com/iw2rmb/slashpad/menu"
	"github.com/iw2rmb/slashpad/metrics"
)

// Model is a Bubble Tea component that renders a buffer and drives its
// slash-command menu.
type Model struct {
	cfg     Config
	buf     *buffer.Buffer
	machine *menu.Machine
	surface *surface

	focused bool

	viewport viewport.Model

	lastBufVersion uint64
	lastBufResets  uint64
	lastState      buffer.State
}

// surface tracks the drawable size shared by all copies of a Model, so the
// anchor locator sees the latest SetSize.
type surface struct {
	width, height int
}

func (s *surface) ready() bool { return s.width > 0 && s.height > 0 }

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	buf := buffer.New(cfg.Text)
	surf := &surface{}
	m := Model{
		cfg:      cfg,
		buf:      buf,
		surface:  surf,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.machine = menu.New(menu.Config{
		Options: cfg.Options,
		Buffer:  buf,
		Locate:  newLocator(cfg.Measurer, cfg.Font, surf),
	})
	m.lastBufVersion = buf.Version()
	m.lastBufResets = buf.Resets()
	m.lastState = buf.Snapshot()
	m.rebuildContent()
	return m
}

func newLocator(measurer metrics.Measurer, font metrics.Font, surf *surface) menu.LocateFunc {
	return func(s buffer.State) (metrics.Point, error) {
		if !surf.ready() {
			return metrics.Point{}, fmt.Errorf("locate caret: surface not sized: %w", metrics.ErrUnavailable)
		}
		return metrics.Resolve(measurer, s.Content, s.CaretOffset, font)
	}
}

// Buffer returns the live buffer. Hosts that mutate it directly must follow
// up with an Update (any message) before the next View, or the popup is
// drawn at the anchor measured before the mutation. Append avoids this.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) MenuState() menu.State { return m.machine.State() }

func (m Model) Options() []menu.Option { return m.machine.Options() }

// MenuKeyMap returns the menu bindings in effect.
func (m Model) MenuKeyMap() menu.KeyMap { return m.cfg.MenuKeyMap }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.surface.width = width - m.viewport.Style.GetHorizontalFrameSize()
	m.surface.height = height - m.viewport.Style.GetVerticalFrameSize()

	m.rebuildContent()
	m.followCaret()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCaret()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetText replaces the buffer content and closes the menu.
func (m Model) SetText(text string) Model {
	m.buf.Reset(text)
	m.syncFromBuffer()
	return m
}

// AppendMsg asks the editor to append text at the caret regardless of menu
// state. Producers outside the key path (timers, network) use it.
type AppendMsg struct {
	Text string
}

// Append returns a command delivering AppendMsg.
func Append(text string) tea.Cmd {
	return func() tea.Msg { return AppendMsg{Text: text} }
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		// Host may have mutated the buffer since the last update.
		m.syncFromBuffer()
		return m.updateKey(msg)
	case tea.MouseMsg:
		m.syncFromBuffer()
		return m.updateMouse(msg)
	case AppendMsg:
		m.buf.AppendAtCaret(msg.Text)
		m.syncFromBuffer()
		return m, nil
	default:
		m.syncFromBuffer()
		return m, nil
	}
}

func (m Model) View() string {
	base := m.viewport.View()
	if popup, ok := m.menuPopupRender(base); ok {
		return popup.View
	}
	return base
}

// syncFromBuffer is the single post-mutation hook: it closes the menu after a
// reset, repositions an open menu when the buffer grew and notifies
// OnChange. It runs for edits made by the editor itself and for edits made by
// the host on Buffer().
func (m *Model) syncFromBuffer() bool {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	if ver == m.lastBufVersion {
		return false
	}
	prev := m.lastState
	cur := m.buf.Snapshot()
	m.lastBufVersion = ver
	m.lastState = cur

	ev := buildChangeEvent(ver, prev, cur)
	events.Buffer.Changed(ver, cur.RuneLen(), cur.LineBreaks()+1, ev.Grown)

	if resets := m.buf.Resets(); resets != m.lastBufResets {
		m.lastBufResets = resets
		events.Buffer.Reset(cur.RuneLen())
		if m.machine.Close() {
			m.emitMenu(MenuEvent{Kind: MenuCancelled, State: m.machine.State()})
		}
	}

	if m.machine.BufferChanged(prev, cur) {
		m.emitMenu(MenuEvent{Kind: MenuRepositioned, State: m.machine.State()})
	}

	m.rebuildContent()
	m.followCaret()

	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ev)
	}
	return true
}

func (m *Model) emitMenu(ev MenuEvent) {
	if m.cfg.OnMenu != nil {
		m.cfg.OnMenu(ev)
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCaret keeps the caret row visible. The caret is always on the last
// line, so this scrolls to the bottom when the content overflows.
func (m *Model) followCaret() {
	h := m.visibleRowCount()
	if h <= 0 {
		return
	}
	row := m.buf.Lines() - 1
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}

// anchorCell converts the menu anchor from measurer units into a cell column
// and the content row just below the caret line.
func (m Model) anchorCell(p metrics.Point) (col, row int) {
	cell := metrics.Size{Width: 1, Height: 1}
	if cs, ok := m.cfg.Measurer.(metrics.CellSizer); ok {
		if sz, err := cs.CellSize(m.cfg.Font); err == nil && sz.Width > 0 && sz.Height > 0 {
			cell = sz
		} else if err != nil {
			events.Metrics.Unavailable("cell size", err)
		}
	}
	return int(math.Round(p.X / cell.Width)), int(math.Round(p.Y / cell.Height))
}
