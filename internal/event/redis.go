package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/osse101/BrandishSpin_Go/internal/logger"
)

// RedisPublisher is the slice of the redis client the bridge uses
type RedisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisBridge forwards bus events as JSON to a redis pub/sub channel so other
// instances and dashboards can follow spin activity.
type RedisBridge struct {
	client  RedisPublisher
	channel string
}

// NewRedisClient parses a redis:// URL and checks the connection
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, RedisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

// NewRedisBridge creates a bridge publishing to channel (DefaultRedisChannel when empty)
func NewRedisBridge(client RedisPublisher, channel string) *RedisBridge {
	if channel == "" {
		channel = DefaultRedisChannel
	}
	return &RedisBridge{client: client, channel: channel}
}

// Subscribe registers the bridge for the given event types. Forwarding is
// best effort: a failure is logged and does not fail the publish, so the
// other subscribers never see a retried duplicate because Redis was down.
func (b *RedisBridge) Subscribe(bus Bus, types ...Type) {
	for _, t := range types {
		bus.Subscribe(t, func(ctx context.Context, evt Event) error {
			_ = b.Forward(ctx, evt)
			return nil
		})
	}
}

// Forward publishes one event to the redis channel
func (b *RedisBridge) Forward(ctx context.Context, evt Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", evt.Type, err)
	}
	if err := b.client.Publish(ctx, b.channel, data).Err(); err != nil {
		logger.FromContext(ctx).Warn(LogMsgRedisForwardFailed, "event_type", evt.Type, "error", err)
		return err
	}
	return nil
}
