package events

import (
	"log/slog"

	"github.com/iw2rmb/slashpad/internal/logging"
)

type BufferTracer struct{}

var Buffer = BufferTracer{}

func (BufferTracer) Changed(version uint64, runes, lines int, grown bool) {
	logging.Trace("buffer.changed",
		slog.Uint64("version", version),
		slog.Int("runes", runes),
		slog.Int("lines", lines),
		slog.Bool("grown", grown),
	)
}

func (BufferTracer) Reset(runes int) {
	logging.Trace("buffer.reset", slog.Int("runes", runes))
}
