// Package oracle requests verifiable random words and delivers them back to
// the spin registry.
package oracle

import (
	"context"
	"math/big"

	"github.com/google/uuid"
)

// Handle is the oracle's own reference for an accepted request
type Handle string

// Client requests randomness for a correlation id. Exactly one callback per
// accepted request arrives later, possibly never, in any order relative to
// other requests. Implementations must not deliver the callback before
// RequestRandomness has returned.
type Client interface {
	// ID is the caller identity attached to this oracle's callbacks
	ID() string
	RequestRandomness(ctx context.Context, correlationID uuid.UUID) (Handle, error)
}

// Callback receives a delivered random word. It is bound to spin.Service.OnRandomnessReady.
type Callback func(ctx context.Context, caller string, requestID uuid.UUID, randomValue *big.Int) error
