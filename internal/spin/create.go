package spin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
	"github.com/osse101/BrandishSpin_Go/internal/event"
	"github.com/osse101/BrandishSpin_Go/internal/logger"
	"github.com/osse101/BrandishSpin_Go/internal/repository"
)

// CreateRequest takes the spin cost from the player and asks the oracle for
// randomness. Either the cost is held in custody and a Pending request exists,
// or nothing changed.
func (s *service) CreateRequest(ctx context.Context, player string) (*domain.SpinRequest, error) {
	log := logger.FromContext(ctx)

	if player == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPlayerRequired)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkFunding(ctx, player); err != nil {
		return nil, err
	}

	id := uuid.New()
	if err := s.ledger.Pull(ctx, player, s.cfg.Cost, id.String()); err != nil {
		err = classifyLedgerError(err)
		if errors.Is(err, domain.ErrLedgerUnconfirmed) {
			// a refund could pay back a cost that was never taken
			log.Error(LogMsgPullUnconfirmed, "spin_id", id, "player", player, "amount", s.cfg.Cost, "error", err)
		}
		return nil, err
	}

	handle, err := s.oracle.RequestRandomness(ctx, id)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", domain.ErrOracleUnavailable, ErrContextFailedToRequestRandom, err)
		return nil, s.refund(ctx, player, id, err)
	}

	req := &domain.SpinRequest{
		ID:           id,
		Player:       player,
		State:        domain.SpinStatePending,
		Cost:         s.cfg.Cost,
		OracleHandle: string(handle),
		PayoutStatus: domain.PayoutStatusNone,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.insert(ctx, req); err != nil {
		return nil, s.refund(ctx, player, id, err)
	}

	log.Info(LogMsgSpinRequested, "spin_id", id, "player", player, "cost", s.cfg.Cost, "oracle_handle", handle)
	s.publish(ctx, event.NewSpinRequestedEvent(req))
	return req, nil
}

// checkFunding verifies balance first, then allowance
func (s *service) checkFunding(ctx context.Context, player string) error {
	balance, err := s.ledger.BalanceOf(ctx, player)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToReadBalance, err)
	}
	if balance < s.cfg.Cost {
		return fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientBalance, balance, s.cfg.Cost)
	}

	allowance, err := s.ledger.AllowanceOf(ctx, player, s.ledger.Custody())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToReadAllowance, err)
	}
	if allowance < s.cfg.Cost {
		return fmt.Errorf("%w: approved %d, need %d", domain.ErrInsufficientAllowance, allowance, s.cfg.Cost)
	}
	return nil
}

func (s *service) insert(ctx context.Context, req *domain.SpinRequest) error {
	tx, err := s.repo.BeginSpinTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.InsertRequest(ctx, req); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToInsertRequest, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}
	return nil
}

// refund returns a pulled cost after a later step failed. It returns cause,
// annotated when the refund itself fails. The push ignores ctx cancellation.
func (s *service) refund(ctx context.Context, player string, id uuid.UUID, cause error) error {
	log := logger.FromContext(ctx)
	if err := s.ledger.Push(context.WithoutCancel(ctx), player, s.cfg.Cost, id.String()); err != nil {
		log.Error(LogMsgRefundFailed, "spin_id", id, "player", player, "amount", s.cfg.Cost, "error", err, "cause", cause)
		return fmt.Errorf("%w (%s: %v)", cause, ErrContextRefundFailed, err)
	}
	log.Warn(LogMsgCostRefunded, "spin_id", id, "player", player, "amount", s.cfg.Cost, "cause", cause)
	return cause
}

// classifyLedgerError keeps definite refusals and treats anything else as an
// unknown outcome
func classifyLedgerError(err error) error {
	if errors.Is(err, domain.ErrTransferRejected) || errors.Is(err, domain.ErrLedgerUnconfirmed) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrLedgerUnconfirmed, err)
}
