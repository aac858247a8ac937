// Package spin is the registry of paid spin requests. It takes payment,
// requests randomness, and settles each request exactly once when the
// oracle delivers.
package spin

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
	"github.com/osse101/BrandishSpin_Go/internal/event"
	"github.com/osse101/BrandishSpin_Go/internal/ledger"
	"github.com/osse101/BrandishSpin_Go/internal/oracle"
	"github.com/osse101/BrandishSpin_Go/internal/outcome"
	"github.com/osse101/BrandishSpin_Go/internal/repository"
	"github.com/osse101/BrandishSpin_Go/internal/stats"
)

// Service defines the interface for spin operations
type Service interface {
	CreateRequest(ctx context.Context, player string) (*domain.SpinRequest, error)
	// OnRandomnessReady is the oracle callback. Only the trusted oracle may call it.
	OnRandomnessReady(ctx context.Context, caller string, requestID uuid.UUID, randomValue *big.Int) error

	IsFulfilled(ctx context.Context, id uuid.UUID) (bool, error)
	GetResult(ctx context.Context, id uuid.UUID) (*domain.SpinResult, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (string, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*domain.SpinRequest, error)

	RetryPayout(ctx context.Context, id uuid.UUID) (*domain.SpinRequest, error)
	ListFailedPayouts(ctx context.Context, limit int) ([]*domain.SpinRequest, error)

	Config() domain.SpinConfig
}

type service struct {
	repo      repository.Spin
	statsSvc  stats.Service
	ledger    ledger.Client
	oracle    oracle.Client
	publisher event.Publisher
	cfg       domain.SpinConfig
	cache     *resultCache

	// mu serializes every state change of the registry
	mu sync.Mutex
}

// NewService creates a new spin service. publisher may be nil.
func NewService(repo repository.Spin, statsSvc stats.Service, ledgerClient ledger.Client, oracleClient oracle.Client, publisher event.Publisher, cfg domain.SpinConfig) (Service, error) {
	if err := outcome.Validate(cfg); err != nil {
		return nil, err
	}
	return &service{
		repo:      repo,
		statsSvc:  statsSvc,
		ledger:    ledgerClient,
		oracle:    oracleClient,
		publisher: publisher,
		cfg:       cfg,
		cache:     newResultCache(ResultCacheSize, ResultCacheTTL),
	}, nil
}

func (s *service) Config() domain.SpinConfig {
	return s.cfg
}

func (s *service) GetRequest(ctx context.Context, id uuid.UUID) (*domain.SpinRequest, error) {
	req, err := s.repo.GetRequest(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetRequest, err)
	}
	if req == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRequest, id)
	}
	s.cache.Set(req)
	return req, nil
}

// lookup serves the immutable view of a request, from cache when fulfilled
func (s *service) lookup(ctx context.Context, id uuid.UUID) (*domain.SpinRequest, error) {
	if req, ok := s.cache.Get(id); ok {
		return req, nil
	}
	return s.GetRequest(ctx, id)
}

func (s *service) IsFulfilled(ctx context.Context, id uuid.UUID) (bool, error) {
	req, err := s.lookup(ctx, id)
	if err != nil {
		return false, err
	}
	return req.IsFulfilled(), nil
}

func (s *service) GetResult(ctx context.Context, id uuid.UUID) (*domain.SpinResult, error) {
	req, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if !req.IsFulfilled() || req.Result == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFulfilled, id)
	}
	result := *req.Result
	return &result, nil
}

func (s *service) GetPlayer(ctx context.Context, id uuid.UUID) (string, error) {
	req, err := s.lookup(ctx, id)
	if err != nil {
		return "", err
	}
	return req.Player, nil
}

func (s *service) ListFailedPayouts(ctx context.Context, limit int) ([]*domain.SpinRequest, error) {
	if limit <= 0 {
		limit = DefaultFailedPayoutBatch
	}
	reqs, err := s.repo.ListRequestsByPayoutStatus(ctx, domain.PayoutStatusFailed, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListPayouts, err)
	}
	return reqs, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishWithRetry(ctx, evt)
}
