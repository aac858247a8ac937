package domain

import (
	"time"

	"github.com/google/uuid"
)

// SpinState represents the lifecycle state of a spin request
type SpinState string

const (
	SpinStatePending   SpinState = "Pending"
	SpinStateFulfilled SpinState = "Fulfilled"
)

// PayoutStatus tracks delivery of a winning payout from the custody pool
type PayoutStatus string

const (
	PayoutStatusNone       PayoutStatus = "none"
	PayoutStatusProcessing PayoutStatus = "processing"
	PayoutStatusPaid       PayoutStatus = "paid"
	PayoutStatusFailed     PayoutStatus = "failed"
)

// SpinResult is the outcome of a fulfilled spin. It is written once.
type SpinResult struct {
	Won          bool  `json:"won"`
	PayoutAmount int64 `json:"payout_amount"`
}

// SpinRequest is a single paid request for a randomized outcome
type SpinRequest struct {
	ID           uuid.UUID    `json:"id"`
	Player       string       `json:"player"`
	State        SpinState    `json:"state"`
	Cost         int64        `json:"cost"`
	OracleHandle string       `json:"oracle_handle,omitempty"`
	Result       *SpinResult  `json:"result,omitempty"`
	RandomValue  string       `json:"random_value,omitempty"` // decimal
	PayoutStatus PayoutStatus `json:"payout_status"`
	CreatedAt    time.Time    `json:"created_at"`
	FulfilledAt  *time.Time   `json:"fulfilled_at,omitempty"`
	PaidAt       *time.Time   `json:"paid_at,omitempty"`
}

// IsFulfilled reports whether the request has reached its terminal state
func (r *SpinRequest) IsFulfilled() bool {
	return r.State == SpinStateFulfilled
}

// SpinConfig holds the immutable game rules.
// A reduced random value below WinThreshold (out of Modulus) wins Cost*PayoutMultiplier.
type SpinConfig struct {
	Cost             int64  `json:"cost"`
	WinThreshold     uint64 `json:"win_threshold"`
	Modulus          uint64 `json:"modulus"`
	PayoutMultiplier int64  `json:"payout_multiplier"`
}

// WinPayout is the amount paid for a winning spin
func (c SpinConfig) WinPayout() int64 {
	return c.Cost * c.PayoutMultiplier
}
