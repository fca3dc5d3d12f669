package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/slashpad"
	"github.com/iw2rmb/slashpad/editor"
)

const statusHeight = 1

var quitKey = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// status collects editor events for the status line. The editor calls back
// into it synchronously from Update.
type status struct {
	lastMenu editor.MenuEvent
	hasMenu  bool
	version  uint64
}

// Model hosts the editor above a one-line status bar.
type Model struct {
	editor editor.Model
	help   help.Model
	status *status
	width  int
	height int
}

func NewModel(cfg editor.Config) *Model {
	st := &status{}
	onChange, onMenu := cfg.OnChange, cfg.OnMenu
	cfg.OnChange = func(ev editor.ChangeEvent) {
		st.version = ev.Version
		if onChange != nil {
			onChange(ev)
		}
	}
	cfg.OnMenu = func(ev editor.MenuEvent) {
		st.lastMenu = ev
		st.hasMenu = true
		if onMenu != nil {
			onMenu(ev)
		}
	}
	return &Model{
		editor: editor.New(cfg),
		help:   help.New(),
		status: st,
	}
}

func (m *Model) Init() tea.Cmd { return m.editor.Init() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.editor = m.editor.SetSize(msg.Width, maxInt(msg.Height-statusHeight, 0))
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	return m.editor.View() + "\n" + m.statusLine()
}

// Editor exposes the hosted editor.
func (m *Model) Editor() editor.Model { return m.editor }

func (m *Model) statusLine() string {
	var bindings []key.Binding
	km := m.editor.MenuKeyMap()
	if m.editor.MenuState().IsOpen() {
		bindings = km.ShortHelp()
	} else {
		bindings = []key.Binding{km.Trigger, quitKey}
	}

	parts := []string{slashpad.Banner()}
	if m.status.hasMenu && m.status.lastMenu.Kind == editor.MenuCommitted {
		parts = append(parts, fmt.Sprintf("inserted %s", m.status.lastMenu.Option.ID))
	}
	parts = append(parts, m.help.ShortHelpView(bindings))
	return statusStyle.Render(strings.Join(parts, " · "))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
