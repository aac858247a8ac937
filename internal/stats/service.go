// Package stats keeps per-player aggregates of fulfilled spins.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
	"github.com/osse101/BrandishSpin_Go/internal/logger"
	"github.com/osse101/BrandishSpin_Go/internal/repository"
)

// Service defines the interface for player stats operations
type Service interface {
	// RecordSpin applies one fulfilled spin inside the caller's fulfillment
	// transaction. It must be called exactly once per fulfilled request.
	RecordSpin(ctx context.Context, tx repository.StatsTx, player string, won bool, payoutAmount, cost int64) (*domain.PlayerStats, error)
	// GetStats returns zeroed stats for a player with no history
	GetStats(ctx context.Context, player string) (*domain.PlayerStats, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new stats service
func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *service) RecordSpin(ctx context.Context, tx repository.StatsTx, player string, won bool, payoutAmount, cost int64) (*domain.PlayerStats, error) {
	log := logger.FromContext(ctx)

	switch {
	case player == "":
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPlayerRequired)
	case payoutAmount < 0 || cost < 0:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativeAmount)
	case !won && payoutAmount != 0:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPayoutOnLoss)
	}

	current, err := tx.GetPlayerStatsForUpdate(ctx, player)
	if err != nil {
		log.Error(LogMsgFailedToLoadStats, "error", err, "player", player)
		return nil, fmt.Errorf(ErrMsgGetStatsFailed, err)
	}
	if current == nil {
		current = &domain.PlayerStats{Player: player}
	}

	current.Record(won, payoutAmount, cost)
	current.UpdatedAt = s.now().UTC()

	if err := tx.UpsertPlayerStats(ctx, current); err != nil {
		log.Error(LogMsgFailedToWriteStats, "error", err, "player", player)
		return nil, fmt.Errorf(ErrMsgUpsertStatsFailed, err)
	}

	log.Debug(LogMsgSpinRecorded, "player", player, "won", won, "spins", current.Spins)
	return current, nil
}

func (s *service) GetStats(ctx context.Context, player string) (*domain.PlayerStats, error) {
	st, err := s.repo.GetPlayerStats(ctx, player)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetStatsFailed, err)
	}
	if st == nil {
		return &domain.PlayerStats{Player: player}, nil
	}
	return st, nil
}
