package events

import (
	"log/slog"

	"github.com/iw2rmb/slashpad/internal/logging"
)

type MetricsTracer struct{}

var Metrics = MetricsTracer{}

// Unavailable is logged at warn level; a missing surface is worth seeing
// even with tracing off.
func (MetricsTracer) Unavailable(op string, err error) {
	if err == nil {
		return
	}
	logging.Warn("metrics unavailable", "op", op, "error", err.Error())
	logging.Trace("metrics.unavailable", slog.String("op", op), slog.String("error", err.Error()))
}
