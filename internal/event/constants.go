package event

import "time"

const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Retry configuration
const (
	RetryQueueBufferSize = 1000
	RetryMaxAttempts     = 5
	RetryInitialDelay    = 2 * time.Second
)

// DeadLetterFilePermissions is the file mode for dead-letter files
const DeadLetterFilePermissions = 0644

// Redis bridge
const (
	DefaultRedisChannel = "brandish-spin:events"
	RedisPingTimeout    = 3 * time.Second
)

const (
	LogMsgEventPublishFailed    = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, event dropped to dead-letter"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
	LogMsgEventDeadLettered     = "Event dead-lettered"
	LogMsgEventRetryExhausted   = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed      = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgQueueDrainedShutdown  = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"
	LogMsgRedisForwardFailed    = "Failed to forward event to redis"

	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay doubles the base delay for each attempt: base, 2*base, 4*base...
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return baseDelay * time.Duration(1<<(attempt-1))
}
