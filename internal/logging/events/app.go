package events

import (
	"log/slog"

	"github.com/iw2rmb/slashpad/internal/logging"
)

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]any) {
	attrs := make([]slog.Attr, 0, len(payload))
	for k, v := range payload {
		attrs = append(attrs, slog.Any(k, v))
	}
	logging.Trace("app.start", attrs...)
}

func (AppTracer) Exit(err error) {
	if err != nil {
		logging.Trace("app.exit", slog.String("error", err.Error()))
		return
	}
	logging.Trace("app.exit")
}
