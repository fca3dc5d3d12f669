package events

import (
	"log/slog"

	"github.com/iw2rmb/slashpad/internal/logging"
)

type MenuTracer struct{}

var Menu = MenuTracer{}

func (MenuTracer) Open(x, y float64, options int) {
	logging.Trace("menu.open", slog.Float64("x", x), slog.Float64("y", y), slog.Int("options", options))
}

func (MenuTracer) OpenIgnored(reason string) {
	logging.Trace("menu.open.ignored", slog.String("reason", reason))
}

func (MenuTracer) Highlight(from, to int) {
	logging.Trace("menu.highlight", slog.Int("from", from), slog.Int("to", to))
}

func (MenuTracer) Commit(id string, index int) {
	logging.Trace("menu.commit", slog.String("id", id), slog.Int("index", index))
}

func (MenuTracer) Cancel(reason string) {
	logging.Trace("menu.cancel", slog.String("reason", reason))
}

func (MenuTracer) Reposition(x, y float64) {
	logging.Trace("menu.reposition", slog.Float64("x", x), slog.Float64("y", y))
}
