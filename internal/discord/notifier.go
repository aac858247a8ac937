// Package discord posts spin highlights to a Discord channel webhook.
package discord

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/BrandishSpin_Go/internal/event"
	"github.com/osse101/BrandishSpin_Go/internal/logger"
)

// SendFunc delivers one webhook message
type SendFunc func(ctx context.Context, params *discordgo.WebhookParams) error

// NewWebhookSender returns a SendFunc for a channel webhook
func NewWebhookSender(webhookID, token string) (SendFunc, error) {
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Client.Timeout = SendTimeout
	return func(_ context.Context, params *discordgo.WebhookParams) error {
		_, err := session.WebhookExecute(webhookID, token, false, params)
		return err
	}, nil
}

// Notifier announces winning spins and alerts on failed payouts. Sends happen
// on a background goroutine so a slow webhook never holds up settlement.
type Notifier struct {
	send      SendFunc
	amounts   AmountFormatter
	minPayout int64

	queue    chan *discordgo.WebhookParams
	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewNotifier starts a notifier. Wins paying less than minPayout are not announced.
func NewNotifier(send SendFunc, amounts AmountFormatter, minPayout int64) *Notifier {
	n := &Notifier{
		send:      send,
		amounts:   amounts,
		minPayout: minPayout,
		queue:     make(chan *discordgo.WebhookParams, NotificationQueueSize),
		quit:      make(chan struct{}),
	}
	n.wg.Add(1)
	go n.run()
	return n
}

// Register subscribes the notifier to the bus
func (n *Notifier) Register(bus event.Bus) {
	bus.Subscribe(event.SpinFulfilled, n.handleSpinFulfilled)
	bus.Subscribe(event.SpinPayoutFailed, n.handlePayoutFailed)
	logger.Info(LogMsgNotifierReady)
}

func (n *Notifier) handleSpinFulfilled(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.SpinFulfilledPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgParseError, "event_type", evt.Type, "error", err)
		return nil
	}
	if !p.Won || p.PayoutAmount < n.minPayout {
		return nil
	}

	n.enqueue(ctx, &discordgo.MessageEmbed{
		Title:       "Winner!",
		Description: fmt.Sprintf("**%s** spun and won **%s**!", p.Player, n.amounts.Format(p.PayoutAmount)),
		Color:       ColorWin,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Request", Value: p.RequestID, Inline: true},
		},
		Timestamp: time.Unix(p.Timestamp, 0).UTC().Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: FooterText},
	})
	return nil
}

func (n *Notifier) handlePayoutFailed(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.SpinPayoutPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgParseError, "event_type", evt.Type, "error", err)
		return nil
	}

	n.enqueue(ctx, &discordgo.MessageEmbed{
		Title:       "Payout failed",
		Description: fmt.Sprintf("Could not pay **%s** to **%s**. The payout will be retried; check the pool balance.", n.amounts.Format(p.Amount), p.Player),
		Color:       ColorAlert,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Request", Value: p.RequestID, Inline: true},
			{Name: "Error", Value: p.Error, Inline: false},
		},
		Timestamp: time.Unix(p.Timestamp, 0).UTC().Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: FooterText},
	})
	return nil
}

func (n *Notifier) enqueue(ctx context.Context, embed *discordgo.MessageEmbed) {
	params := &discordgo.WebhookParams{
		Username: WebhookUsername,
		Embeds:   []*discordgo.MessageEmbed{embed},
	}
	select {
	case <-n.quit:
	case n.queue <- params:
	default:
		logger.FromContext(ctx).Warn(LogMsgNotificationDropped, "title", embed.Title)
	}
}

func (n *Notifier) run() {
	defer n.wg.Done()
	for {
		select {
		case params := <-n.queue:
			n.deliver(params)
		case <-n.quit:
			for {
				select {
				case params := <-n.queue:
					n.deliver(params)
				default:
					return
				}
			}
		}
	}
}

func (n *Notifier) deliver(params *discordgo.WebhookParams) {
	ctx, cancel := context.WithTimeout(context.Background(), SendTimeout)
	defer cancel()

	title := params.Embeds[0].Title
	if err := n.send(ctx, params); err != nil {
		logger.Error(LogMsgNotificationError, "title", title, "error", err)
		return
	}
	logger.Debug(LogMsgNotificationSent, "title", title)
}

// Shutdown flushes queued notifications
func (n *Notifier) Shutdown(ctx context.Context) error {
	n.stopOnce.Do(func() { close(n.quit) })

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		logger.Warn(LogMsgNotifierStopTimeout)
		return ctx.Err()
	}
}
