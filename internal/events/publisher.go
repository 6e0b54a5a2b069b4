// Package events publishes catalog change notifications to Redis pub/sub.
// Publishing is best-effort: a failed publish is logged and never surfaced
// to the API caller.
package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Channel names consumed by downstream services.
const (
	ChannelCatalogChanged = "EVENT_CATALOG_CHANGED"
	ChannelCatalogStats   = "EVENT_CATALOG_STATS"
)

// Publisher wraps the Redis client used for change notifications.
type Publisher struct {
	rdb *redis.Client
}

// NewPublisher returns a configured Publisher.
func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// ResourceChanged announces a create/update/delete on a resource row.
// eventType is e.g. "job.created" or "company.removed"; key is the natural
// key of the affected row.
func (p *Publisher) ResourceChanged(ctx context.Context, eventType, key string) {
	p.publish(ctx, ChannelCatalogChanged, map[string]string{
		"type": eventType,
		"key":  key,
	})
}

// Stats publishes a periodic catalog snapshot.
func (p *Publisher) Stats(ctx context.Context, payload any) {
	p.publish(ctx, ChannelCatalogStats, payload)
}

func (p *Publisher) publish(ctx context.Context, channel string, payload any) {
	if p == nil || p.rdb == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("event marshal failed", "channel", channel, "err", err)
		return
	}
	if err := p.rdb.Publish(ctx, channel, body).Err(); err != nil {
		slog.Warn("event publish failed", "channel", channel, "err", err)
	}
}
