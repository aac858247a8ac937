package discord

import "time"

// Embed colors
const (
	ColorWin   = 0xFFD700 // gold
	ColorAlert = 0xE74C3C // red
)

const (
	NotificationQueueSize = 100
	SendTimeout           = 10 * time.Second
	FooterText            = "Brandish Spin"
	WebhookUsername       = "Brandish Spin"
)

const (
	LogMsgNotificationSent    = "Discord notification sent"
	LogMsgNotificationError   = "Failed to send Discord notification"
	LogMsgNotificationDropped = "Discord notification queue full, dropping"
	LogMsgParseError          = "Failed to parse event payload for Discord"
	LogMsgNotifierReady       = "Discord notifier subscribed"
	LogMsgNotifierStopTimeout = "Discord notifier shutdown timeout"
)
