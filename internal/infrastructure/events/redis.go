package events

import (
	"context"
	"encoding/json"
	"fmt"

	"dealflow-backend/internal/domain/event"

	"github.com/redis/go-redis/v9"
)

// DefaultChannelPrefix namespaces the pub/sub channels, one per event type:
// dealflow.events.analysis_completed etc.
const DefaultChannelPrefix = "dealflow.events"

// RedisPublisher fans domain events out over Redis pub/sub. Subscribing
// collaborators (notifications, bot, document generation) receive
// identifier-only payloads and fetch state themselves.
type RedisPublisher struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, prefix: DefaultChannelPrefix}
}

func (p *RedisPublisher) Publish(ctx context.Context, ev event.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	channel := p.prefix + "." + string(ev.Type)
	if err := p.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}
	return nil
}
