package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
)

// Spin defines data access for spin requests and player statistics.
// Lookups return nil, nil when the row does not exist.
type Spin interface {
	BeginSpinTx(ctx context.Context) (SpinTx, error)

	GetRequest(ctx context.Context, id uuid.UUID) (*domain.SpinRequest, error)
	GetPlayerStats(ctx context.Context, player string) (*domain.PlayerStats, error)
	ListRequestsByPayoutStatus(ctx context.Context, status domain.PayoutStatus, limit int) ([]*domain.SpinRequest, error)

	// UpdatePayoutStatusIfMatches moves payout_status from expected to next and
	// returns rows affected. Moving to paid stamps paid_at.
	UpdatePayoutStatusIfMatches(ctx context.Context, id uuid.UUID, expected, next domain.PayoutStatus) (int64, error)
}

// SpinTx groups the writes of one request creation or one fulfillment
type SpinTx interface {
	Tx
	StatsTx

	InsertRequest(ctx context.Context, req *domain.SpinRequest) error
	GetRequestForUpdate(ctx context.Context, id uuid.UUID) (*domain.SpinRequest, error)

	// CompleteRequestIfPending writes the result only while the request is
	// still Pending and returns rows affected (0 or 1).
	CompleteRequestIfPending(ctx context.Context, id uuid.UUID, completion Completion) (int64, error)
}

// StatsTx is the slice of a transaction the stats store writes through
type StatsTx interface {
	GetPlayerStatsForUpdate(ctx context.Context, player string) (*domain.PlayerStats, error)
	UpsertPlayerStats(ctx context.Context, stats *domain.PlayerStats) error
}

// Completion is the data written when a request is fulfilled
type Completion struct {
	Result       domain.SpinResult
	RandomValue  string
	PayoutStatus domain.PayoutStatus
	FulfilledAt  time.Time
}

// ErrDuplicateRequest is returned when a request id is inserted twice
var ErrDuplicateRequest = errors.New("spin request already exists")
