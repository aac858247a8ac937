package spin

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/BrandishSpin_Go/internal/database/memory"
	"github.com/osse101/BrandishSpin_Go/internal/domain"
	"github.com/osse101/BrandishSpin_Go/internal/event"
	"github.com/osse101/BrandishSpin_Go/internal/oracle"
	"github.com/osse101/BrandishSpin_Go/internal/repository"
)

// MockLedger
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) Custody() string {
	return m.Called().String(0)
}

func (m *MockLedger) BalanceOf(ctx context.Context, account string) (int64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedger) AllowanceOf(ctx context.Context, owner, spender string) (int64, error) {
	args := m.Called(ctx, owner, spender)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedger) Pull(ctx context.Context, from string, amount int64, reference string) error {
	return m.Called(ctx, from, amount, reference).Error(0)
}

func (m *MockLedger) Push(ctx context.Context, to string, amount int64, reference string) error {
	return m.Called(ctx, to, amount, reference).Error(0)
}

// MockStatsService
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

// faultyStore is a memory store whose transactions fail on demand
type faultyStore struct {
	*memory.Store

	mu           sync.Mutex
	failInsert   error
	failComplete error
	failCommit   error
}

func newFaultyStore() *faultyStore {
	return &faultyStore{Store: memory.NewStore()}
}

func (s *faultyStore) BeginSpinTx(ctx context.Context) (repository.SpinTx, error) {
	tx, err := s.Store.BeginSpinTx(ctx)
	if err != nil {
		return nil, err
	}
	return &faultyTx{SpinTx: tx, store: s}, nil
}

func (s *faultyStore) fail(insert, complete, commit error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failInsert, s.failComplete, s.failCommit = insert, complete, commit
}

func (s *faultyStore) faults() (insert, complete, commit error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failInsert, s.failComplete, s.failCommit
}

type faultyTx struct {
	repository.SpinTx
	store *faultyStore
}

func (t *faultyTx) InsertRequest(ctx context.Context, req *domain.SpinRequest) error {
	if err, _, _ := t.store.faults(); err != nil {
		return err
	}
	return t.SpinTx.InsertRequest(ctx, req)
}

func (t *faultyTx) CompleteRequestIfPending(ctx context.Context, id uuid.UUID, c repository.Completion) (int64, error) {
	if _, err, _ := t.store.faults(); err != nil {
		return 0, err
	}
	return t.SpinTx.CompleteRequestIfPending(ctx, id, c)
}

func (t *faultyTx) Commit(ctx context.Context) error {
	if _, _, err := t.store.faults(); err != nil {
		return err
	}
	return t.SpinTx.Commit(ctx)
}

// MockOracle
type MockOracle struct {
	mock.Mock
}

func (m *MockOracle) ID() string {
	return m.Called().String(0)
}

func (m *MockOracle) RequestRandomness(ctx context.Context, correlationID uuid.UUID) (oracle.Handle, error) {
	args := m.Called(ctx, correlationID)
	return oracle.Handle(args.String(0)), args.Error(1)
}

// manualOracle accepts every request and leaves delivery to the test
type manualOracle struct {
	mu        sync.Mutex
	id        string
	requested []uuid.UUID
}

func (o *manualOracle) ID() string { return o.id }

func (o *manualOracle) RequestRandomness(_ context.Context, id uuid.UUID) (oracle.Handle, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.requested = append(o.requested, id)
	return oracle.Handle("handle-" + id.String()), nil
}

func (o *manualOracle) Requested() []uuid.UUID {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]uuid.UUID(nil), o.requested...)
}

// recordingPublisher keeps published events in order
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) PublishWithRetry(_ context.Context, evt event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) Types() []event.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Type, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
