package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// StreamPrefix namespaces per-user notification streams.
const StreamPrefix = "estate:notifications:"

// Redis appends events to a capped per-user stream.
type Redis struct {
	client redis.Cmdable
	maxLen int64
}

func NewRedis(client redis.Cmdable, maxLen int64) *Redis {
	return &Redis{client: client, maxLen: maxLen}
}

// StreamKey is the stream a user's notifications land in.
func StreamKey(userID string) string { return StreamPrefix + userID }

func (n *Redis) Notify(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	args := &redis.XAddArgs{
		Stream: StreamKey(e.UserID.String()),
		Values: map[string]any{
			"kind":        string(e.Kind),
			"payload":     string(payload),
			"occurred_at": e.OccurredAt.UTC().Format(time.RFC3339Nano),
		},
	}
	if n.maxLen > 0 {
		args.MaxLen = n.maxLen
		args.Approx = true
	}
	if err := n.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("xadd %s: %w", e.Kind, err)
	}
	return nil
}
