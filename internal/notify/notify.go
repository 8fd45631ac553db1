// Package notify carries the dashboard's toast side-channel. The store
// reports mutation outcomes here; the view layer subscribes however it
// likes (log scraping in dev, the Redis channel in the browser app).
package notify

import (
	"context"
	"log/slog"
)

// Notifier receives user-facing outcome messages. Implementations must not
// block the calling mutation; failures to deliver are logged and dropped.
type Notifier interface {
	Success(ctx context.Context, msg string)
	Failure(ctx context.Context, msg string)
}

// Log writes toasts to the structured logger. Always on; this is the
// fallback channel when no broadcaster is configured.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

func (l *Log) Success(ctx context.Context, msg string) {
	l.logger.InfoContext(ctx, msg, slog.String("toast", "success"))
}

func (l *Log) Failure(ctx context.Context, msg string) {
	l.logger.WarnContext(ctx, msg, slog.String("toast", "error"))
}

// Multi fans a toast out to several notifiers in order.
type Multi struct {
	notifiers []Notifier
}

func NewMulti(notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers}
}

func (m *Multi) Success(ctx context.Context, msg string) {
	for _, n := range m.notifiers {
		n.Success(ctx, msg)
	}
}

func (m *Multi) Failure(ctx context.Context, msg string) {
	for _, n := range m.notifiers {
		n.Failure(ctx, msg)
	}
}
