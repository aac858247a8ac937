package spin

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
	"github.com/osse101/BrandishSpin_Go/internal/event"
	"github.com/osse101/BrandishSpin_Go/internal/logger"
	"github.com/osse101/BrandishSpin_Go/internal/outcome"
	"github.com/osse101/BrandishSpin_Go/internal/repository"
)

func (s *service) OnRandomnessReady(ctx context.Context, caller string, requestID uuid.UUID, randomValue *big.Int) error {
	if caller != s.oracle.ID() {
		logger.FromContext(ctx).Warn(LogMsgUnauthorizedCallback, "caller", caller, "spin_id", requestID)
		return fmt.Errorf("%w: %q", domain.ErrUnauthorized, caller)
	}
	return s.fulfill(ctx, requestID, randomValue)
}

// fulfill commits the outcome and stats of a Pending request, then pays a win.
// The payout runs after the registry lock is released and the Fulfilled state
// is durable, so a callback re-entering from the ledger sees ErrAlreadyFulfilled.
func (s *service) fulfill(ctx context.Context, id uuid.UUID, randomValue *big.Int) error {
	log := logger.FromContext(ctx)

	if randomValue == nil || randomValue.Sign() < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgRandomValueNeeded)
	}

	req, err := s.commitOutcome(ctx, id, randomValue)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyFulfilled):
			log.Warn(LogMsgDuplicateFulfillment, "spin_id", id)
		case errors.Is(err, domain.ErrUnknownRequest):
			log.Warn(LogMsgUnknownRequestCallback, "spin_id", id)
		}
		return err
	}

	s.cache.Set(req)
	log.Info(LogMsgSpinFulfilled, "spin_id", id, "player", req.Player, "won", req.Result.Won, "payout", req.Result.PayoutAmount)
	s.publish(ctx, event.NewSpinFulfilledEvent(req))

	if req.PayoutStatus != domain.PayoutStatusProcessing {
		return nil
	}
	return s.payout(ctx, req)
}

func (s *service) commitOutcome(ctx context.Context, id uuid.UUID, randomValue *big.Int) (*domain.SpinRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.repo.BeginSpinTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	req, err := tx.GetRequestForUpdate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetRequest, err)
	}
	if req == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRequest, id)
	}
	if req.IsFulfilled() {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyFulfilled, id)
	}

	result, err := outcome.Evaluate(randomValue, s.cfg)
	if err != nil {
		return nil, err
	}

	completion := repository.Completion{
		Result:       result,
		RandomValue:  randomValue.String(),
		PayoutStatus: domain.PayoutStatusNone,
		FulfilledAt:  time.Now().UTC(),
	}
	if result.Won && result.PayoutAmount > 0 {
		completion.PayoutStatus = domain.PayoutStatusProcessing
	}

	rows, err := tx.CompleteRequestIfPending(ctx, id, completion)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToComplete, err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyFulfilled, id)
	}

	if _, err := s.statsSvc.RecordSpin(ctx, tx, req.Player, result.Won, result.PayoutAmount, req.Cost); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToRecordStats, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	req.State = domain.SpinStateFulfilled
	req.Result = &result
	req.RandomValue = completion.RandomValue
	req.PayoutStatus = completion.PayoutStatus
	req.FulfilledAt = &completion.FulfilledAt
	return req, nil
}

// payout pushes the winnings of a request whose payout status is processing.
// Only a definite ledger refusal marks the payout failed. When the outcome is
// unknown the status stays processing, so no retry can pay twice.
func (s *service) payout(ctx context.Context, req *domain.SpinRequest) error {
	log := logger.FromContext(ctx)
	amount := req.Result.PayoutAmount

	if err := s.ledger.Push(context.WithoutCancel(ctx), req.Player, amount, req.ID.String()); err != nil {
		err = classifyLedgerError(err)
		if !errors.Is(err, domain.ErrTransferRejected) {
			log.Error(LogMsgPayoutUnconfirmed, "spin_id", req.ID, "player", req.Player, "amount", amount, "error", err)
			return &domain.PayoutError{RequestID: req.ID, Player: req.Player, Amount: amount, Err: err}
		}
		log.Error(LogMsgPayoutFailed, "spin_id", req.ID, "player", req.Player, "amount", amount, "error", err)
		s.setPayoutStatus(ctx, req, domain.PayoutStatusFailed)
		s.publish(ctx, event.NewSpinPayoutEvent(req, amount, err))
		return &domain.PayoutError{RequestID: req.ID, Player: req.Player, Amount: amount, Err: err}
	}

	log.Info(LogMsgPayoutSettled, "spin_id", req.ID, "player", req.Player, "amount", amount)
	s.setPayoutStatus(ctx, req, domain.PayoutStatusPaid)
	s.publish(ctx, event.NewSpinPayoutEvent(req, amount, nil))
	return nil
}

// setPayoutStatus moves processing to next. The ledger result already
// happened, so failures here are logged rather than returned.
func (s *service) setPayoutStatus(ctx context.Context, req *domain.SpinRequest, next domain.PayoutStatus) {
	log := logger.FromContext(ctx)
	rows, err := s.repo.UpdatePayoutStatusIfMatches(context.WithoutCancel(ctx), req.ID, domain.PayoutStatusProcessing, next)
	switch {
	case err != nil:
		log.Error(LogMsgPayoutStatusFailed, "spin_id", req.ID, "next", next, "error", err)
	case rows == 0:
		log.Warn(LogMsgPayoutStatusUnexpected, "spin_id", req.ID, "next", next)
	default:
		req.PayoutStatus = next
	}
}

// RetryPayout re-sends a failed payout. The failed to processing claim is a
// compare-and-set, so concurrent retries push at most once.
func (s *service) RetryPayout(ctx context.Context, id uuid.UUID) (*domain.SpinRequest, error) {
	req, err := s.claimPayout(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgPayoutRetry, "spin_id", id, "player", req.Player)
	if err := s.payout(ctx, req); err != nil {
		return req, err
	}
	return s.GetRequest(ctx, id)
}

func (s *service) claimPayout(ctx context.Context, id uuid.UUID) (*domain.SpinRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if !req.IsFulfilled() || req.Result == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFulfilled, id)
	}
	if !req.Result.Won || req.Result.PayoutAmount == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoPayoutDue, id)
	}

	switch req.PayoutStatus {
	case domain.PayoutStatusPaid:
		return nil, fmt.Errorf("%w: %s", domain.ErrPayoutAlreadySettled, id)
	case domain.PayoutStatusProcessing:
		return nil, fmt.Errorf("%w: %s", domain.ErrPayoutInFlight, id)
	}

	rows, err := s.repo.UpdatePayoutStatusIfMatches(ctx, id, domain.PayoutStatusFailed, domain.PayoutStatusProcessing)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToClaimPayout, err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrPayoutInFlight, id)
	}
	req.PayoutStatus = domain.PayoutStatusProcessing
	return req, nil
}
