package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"

	"github.com/osse101/BrandishSpin_Go/internal/config"
	"github.com/osse101/BrandishSpin_Go/internal/discord"
	"github.com/osse101/BrandishSpin_Go/internal/event"
	"github.com/osse101/BrandishSpin_Go/internal/metrics"
	"github.com/osse101/BrandishSpin_Go/internal/sse"
)

// Subscribers are the optional fan-out components that need shutdown
type Subscribers struct {
	Notifier *discord.Notifier
	Redis    *redis.Client
}

// RegisterEventHandlers wires the metrics collector and the SSE bridge, plus
// the Redis bridge and Discord notifier when configured. On error the
// returned Subscribers still hold whatever was started.
func RegisterEventHandlers(ctx context.Context, cfg *config.Config, bus event.Bus, hub *sse.Hub) (*Subscribers, error) {
	subs := &Subscribers{}

	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if hub != nil {
		sse.NewSubscriber(hub, bus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	if cfg.RedisURL != "" {
		client, err := event.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		event.NewRedisBridge(client, "").Subscribe(bus, event.SpinTypes...)
		subs.Redis = client
		slog.Info(LogMsgRedisBridgeRegistered, "channel", event.DefaultRedisChannel)
	}

	if cfg.DiscordWebhookID != "" && cfg.DiscordWebhookToken != "" {
		send, err := discord.NewWebhookSender(cfg.DiscordWebhookID, cfg.DiscordWebhookToken)
		if err != nil {
			return subs, fmt.Errorf("%s: %w", ErrMsgFailedCreateDiscordSender, err)
		}
		subs.Notifier = discord.NewNotifier(send, discord.NewAmountFormatter(cfg.TokenDecimals, cfg.TokenSymbol), 0)
		subs.Notifier.Register(bus)
		slog.Info(LogMsgDiscordNotifierRegistered)
	}

	return subs, nil
}
