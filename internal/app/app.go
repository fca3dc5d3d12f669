package app

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/iw2rmb/slashpad/catalog"
	"github.com/iw2rmb/slashpad/editor"
	"github.com/iw2rmb/slashpad/menu"
	"github.com/iw2rmb/slashpad/metrics"
)

const (
	MetricsCell = "cell"
	MetricsFace = "face"
)

// ErrNotTerminal is returned when stdin or stdout is not interactive.
var ErrNotTerminal = errors.New("slashpad needs an interactive terminal")

// Config describes user-provided application options.
type Config struct {
	OptionsPath string
	Trigger     rune
	Text        string
	Metrics     string
	FontFamily  string
	FontSize    float64
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}
	edCfg, err := EditorConfig(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(NewModel(edCfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// EditorConfig resolves options and the measurer for cfg.
func EditorConfig(cfg Config) (editor.Config, error) {
	options, err := loadOptions(cfg.OptionsPath)
	if err != nil {
		return editor.Config{}, err
	}
	measurer, err := newMeasurer(cfg.Metrics)
	if err != nil {
		return editor.Config{}, err
	}
	edCfg := editor.Config{
		Text:     cfg.Text,
		Options:  options,
		Trigger:  cfg.Trigger,
		Font:     metrics.Font{Family: cfg.FontFamily, Size: cfg.FontSize},
		Measurer: measurer,
		Style:    editor.DefaultStyle(),
	}
	if cb := (editor.SystemClipboard{}); cb.Supported() {
		edCfg.Clipboard = cb
	}
	return edCfg, nil
}

func loadOptions(path string) ([]menu.Option, error) {
	if path == "" {
		return catalog.Defaults(), nil
	}
	opts, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load options: %w", err)
	}
	return opts, nil
}

func newMeasurer(mode string) (metrics.Measurer, error) {
	switch mode {
	case "", MetricsCell:
		return metrics.CellMeasurer{}, nil
	case MetricsFace:
		return metrics.NewFaceMeasurer(), nil
	default:
		return nil, fmt.Errorf("unknown metrics mode %q", mode)
	}
}
