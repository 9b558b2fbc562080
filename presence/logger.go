package presence

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with tracker-specific fields.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that writes JSON records at or above level
// to w, or to stderr when w is nil.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes key=value records at or above
// level to w, or to stderr when w is nil.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithOrigin adds the window origin to the logger.
func (l *Logger) WithOrigin(origin time.Time) *Logger {
	return &Logger{
		Logger: l.Logger.With("origin", origin),
	}
}

// WithSlots adds the slot count to the logger.
func (l *Logger) WithSlots(slots int) *Logger {
	return &Logger{
		Logger: l.Logger.With("slots", slots),
	}
}

// LogMark logs a mark or unmark over a slot span.
func (l *Logger) LogMark(ctx context.Context, from, to int, value bool) {
	l.DebugContext(ctx, "span updated",
		"from", from,
		"to", to,
		"value", value,
	)
}

// LogRejected logs a request that fell outside the window.
func (l *Logger) LogRejected(ctx context.Context, op string, at time.Time, err error) {
	l.WarnContext(ctx, "request rejected",
		"op", op,
		"at", at,
		"error", err,
	)
}

// LogReset logs a tracker reset.
func (l *Logger) LogReset(ctx context.Context, cleared int) {
	l.InfoContext(ctx, "tracker reset",
		"cleared", cleared,
	)
}
