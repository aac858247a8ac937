package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
	"github.com/osse101/BrandishSpin_Go/internal/logger"
)

// PayoutRetrier is the part of the spin service the sweep needs
type PayoutRetrier interface {
	ListFailedPayouts(ctx context.Context, limit int) ([]*domain.SpinRequest, error)
	RetryPayout(ctx context.Context, id uuid.UUID) (*domain.SpinRequest, error)
}

// PayoutRetryJob re-sends winning payouts that the ledger rejected earlier,
// for example while the custody pool was short.
type PayoutRetryJob struct {
	spins PayoutRetrier
	batch int
}

// NewPayoutRetryJob creates a sweep over at most batch failed payouts per run
func NewPayoutRetryJob(spins PayoutRetrier, batch int) *PayoutRetryJob {
	return &PayoutRetryJob{spins: spins, batch: batch}
}

func (j *PayoutRetryJob) Name() string { return JobNamePayoutRetry }

// Process retries each failed payout once. Payouts that fail again stay
// failed for the next run; only listing errors fail the job.
func (j *PayoutRetryJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	failed, err := j.spins.ListFailedPayouts(ctx, j.batch)
	if err != nil {
		return fmt.Errorf("failed to list failed payouts: %w", err)
	}
	if len(failed) == 0 {
		return nil
	}
	log.Info(LogMsgPayoutSweepStarted, "count", len(failed))

	settled := 0
	for _, req := range failed {
		if ctx.Err() != nil {
			break
		}
		_, err := j.spins.RetryPayout(ctx, req.ID)
		switch {
		case err == nil:
			settled++
		case errors.Is(err, domain.ErrPayoutInFlight), errors.Is(err, domain.ErrPayoutAlreadySettled):
			// claimed elsewhere since the listing
		default:
			log.Warn(LogMsgPayoutRetryFailed, "spin_id", req.ID, "player", req.Player, "error", err)
		}
	}

	log.Info(LogMsgPayoutSweepFinished, "attempted", len(failed), "settled", settled)
	return nil
}
