package tracing

import (
	"context"
	"log/slog"

	"github.com/sarchlab/ringwalk/hooking"
	"github.com/sarchlab/ringwalk/ring"
)

// LogHook writes a debug record at the end of every tick.
type LogHook struct {
	logger *slog.Logger
}

// NewLogHook creates a LogHook. A nil logger uses slog.Default().
func NewLogHook(logger *slog.Logger) *LogHook {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogHook{logger: logger}
}

// Func logs completed ticks.
func (h *LogHook) Func(ctx hooking.HookCtx) {
	if ctx.Pos != ring.HookPosAfterTick {
		return
	}

	if !h.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	s, _ := ctx.Detail.(ring.State)
	h.logger.Debug("tick",
		slog.Any("tick", ctx.Item),
		slog.Int("particles", s.Sum()),
		slog.Int("max", s.Max()),
		slog.Int("min", s.Min()),
	)
}
