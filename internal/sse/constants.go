package sse

import "time"

// Buffer sizes
const (
	BroadcastBufferSize = 100
	ClientEventBuffer   = 50
	ClientChannelBuffer = 10
)

// KeepaliveInterval is how often idle streams get a keepalive event
const KeepaliveInterval = 30 * time.Second

// Stream control event types
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Query parameters accepted by the stream handler
const (
	QueryParamTypes  = "types"
	QueryParamPlayer = "player"
)

const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgBroadcastDropped   = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgPayloadInvalid     = "Invalid spin event payload for SSE"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
)
