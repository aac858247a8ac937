package domain

// Event type constants for spin lifecycle events.
// Event types follow the pattern: <entity>.<action>
const (
	// EventTypeSpinRequested is published after a paid request is accepted and randomness requested
	EventTypeSpinRequested = "spin.requested"

	// EventTypeSpinFulfilled is published once per request when its outcome is committed
	EventTypeSpinFulfilled = "spin.fulfilled"

	// EventTypeSpinPayoutSettled is published when a winning payout leaves the custody pool
	EventTypeSpinPayoutSettled = "spin.payout_settled"

	// EventTypeSpinPayoutFailed is published when a winning payout transfer is rejected
	EventTypeSpinPayoutFailed = "spin.payout_failed"
)
