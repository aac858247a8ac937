package handler

import (
	"context"
	"math/big"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
	"github.com/osse101/BrandishSpin_Go/internal/repository"
)

type MockSpinService struct {
	mock.Mock
}

func (m *MockSpinService) CreateRequest(ctx context.Context, player string) (*domain.SpinRequest, error) {
	args := m.Called(ctx, player)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinRequest), args.Error(1)
}

func (m *MockSpinService) OnRandomnessReady(ctx context.Context, caller string, requestID uuid.UUID, randomValue *big.Int) error {
	args := m.Called(ctx, caller, requestID, randomValue)
	return args.Error(0)
}

func (m *MockSpinService) IsFulfilled(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSpinService) GetResult(ctx context.Context, id uuid.UUID) (*domain.SpinResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinResult), args.Error(1)
}

func (m *MockSpinService) GetPlayer(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockSpinService) GetRequest(ctx context.Context, id uuid.UUID) (*domain.SpinRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinRequest), args.Error(1)
}

func (m *MockSpinService) RetryPayout(ctx context.Context, id uuid.UUID) (*domain.SpinRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinRequest), args.Error(1)
}

func (m *MockSpinService) ListFailedPayouts(ctx context.Context, limit int) ([]*domain.SpinRequest, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SpinRequest), args.Error(1)
}

func (m *MockSpinService) Config() domain.SpinConfig {
	args := m.Called()
	return args.Get(0).(domain.SpinConfig)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) RecordSpin(ctx context.Context, tx repository.StatsTx, player string, won bool, payoutAmount, cost int64) (*domain.PlayerStats, error) {
	args := m.Called(ctx, tx, player, won, payoutAmount, cost)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerStats), args.Error(1)
}

func (m *MockStatsService) GetStats(ctx context.Context, player string) (*domain.PlayerStats, error) {
	args := m.Called(ctx, player)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerStats), args.Error(1)
}

type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

type MockLedgerClient struct {
	mock.Mock
}

func (m *MockLedgerClient) Custody() string {
	return m.Called().String(0)
}

func (m *MockLedgerClient) BalanceOf(ctx context.Context, account string) (int64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerClient) AllowanceOf(ctx context.Context, owner, spender string) (int64, error) {
	args := m.Called(ctx, owner, spender)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerClient) Pull(ctx context.Context, from string, amount int64, reference string) error {
	return m.Called(ctx, from, amount, reference).Error(0)
}

func (m *MockLedgerClient) Push(ctx context.Context, to string, amount int64, reference string) error {
	return m.Called(ctx, to, amount, reference).Error(0)
}
