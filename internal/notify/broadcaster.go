package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultToastChannel = "hospital:toasts"

// ToastEvent is the wire shape published to the Redis channel.
type ToastEvent struct {
	Level   string    `json:"level"` // success | error
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Broadcaster publishes toasts to a Redis pub/sub channel so connected
// dashboard frontends can render them. Publish errors are logged, never
// surfaced to the mutation path.
type Broadcaster struct {
	rdb     *redis.Client
	channel string
	logger  *slog.Logger
}

func NewBroadcaster(rdb *redis.Client, channel string, logger *slog.Logger) *Broadcaster {
	if channel == "" {
		channel = DefaultToastChannel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Broadcaster{rdb: rdb, channel: channel, logger: logger}
}

func (b *Broadcaster) Success(ctx context.Context, msg string) {
	b.publish(ctx, ToastEvent{Level: "success", Message: msg, At: time.Now()})
}

func (b *Broadcaster) Failure(ctx context.Context, msg string) {
	b.publish(ctx, ToastEvent{Level: "error", Message: msg, At: time.Now()})
}

func (b *Broadcaster) publish(ctx context.Context, ev ToastEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		b.logger.ErrorContext(ctx, "marshal toast event", "error", err)
		return
	}
	if err := b.rdb.Publish(ctx, b.channel, payload).Err(); err != nil {
		b.logger.WarnContext(ctx, "publish toast event", "error", err, "channel", b.channel)
	}
}
