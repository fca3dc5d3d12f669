package editor

import (
	"reflect"

	"github.com/iw2rmb/slashpad/menu"
	"github.com/iw2rmb/slashpad/metrics"
)

const (
	defaultMenuMaxRows  = 8
	defaultMenuMaxWidth = 48
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer. The caret starts at the end.
	Text string

	// Options is the fixed menu option sequence. An empty sequence disables
	// the menu; the trigger is still consumed.
	Options []menu.Option

	// Trigger opens the menu. Zero means menu.DefaultTrigger.
	Trigger rune

	// Font is handed to Measurer on every anchor computation.
	Font metrics.Font

	// Measurer computes the caret anchor. Nil means metrics.CellMeasurer.
	Measurer metrics.Measurer

	// Zero values use DefaultKeyMap / menu.DefaultKeyMap(Trigger).
	KeyMap     KeyMap
	MenuKeyMap menu.KeyMap

	// Zero value uses DefaultStyle.
	Style Style

	// Clipboard backs the paste binding. Nil disables it.
	Clipboard Clipboard

	// Popup bounds in cells. Zero means the package defaults.
	MenuMaxRows  int
	MenuMaxWidth int

	// OnChange fires once per observed buffer version change.
	OnChange func(ChangeEvent)

	// OnMenu fires after every menu transition.
	OnMenu func(MenuEvent)
}

func normalizeConfig(cfg Config) Config {
	if cfg.Trigger == 0 {
		cfg.Trigger = menu.DefaultTrigger
	}
	if cfg.Measurer == nil {
		cfg.Measurer = metrics.CellMeasurer{}
	}
	if reflect.DeepEqual(cfg.KeyMap, KeyMap{}) {
		cfg.KeyMap = DefaultKeyMap()
	}
	cfg.MenuKeyMap = menu.NormalizeKeyMap(cfg.MenuKeyMap, cfg.Trigger)
	if reflect.DeepEqual(cfg.Style, Style{}) {
		cfg.Style = DefaultStyle()
	}
	if cfg.MenuMaxRows <= 0 {
		cfg.MenuMaxRows = defaultMenuMaxRows
	}
	if cfg.MenuMaxWidth <= 0 {
		cfg.MenuMaxWidth = defaultMenuMaxWidth
	}
	return cfg
}
