// Package memory is an in-process repository.Spin for single-instance
// deployments and tests. Only one write transaction is open at a time; its
// writes become visible on Commit.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
	"github.com/osse101/BrandishSpin_Go/internal/repository"
)

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

// Store holds spin requests and player stats in maps
type Store struct {
	writer sync.Mutex // held for the life of a write transaction

	mu       sync.RWMutex
	requests map[uuid.UUID]*domain.SpinRequest
	stats    map[string]*domain.PlayerStats
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		requests: make(map[uuid.UUID]*domain.SpinRequest),
		stats:    make(map[string]*domain.PlayerStats),
	}
}

var _ repository.Spin = (*Store)(nil)

func (s *Store) BeginSpinTx(ctx context.Context) (repository.SpinTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.writer.Lock()
	return &spinTx{
		store:    s,
		requests: make(map[uuid.UUID]*domain.SpinRequest),
		stats:    make(map[string]*domain.PlayerStats),
	}, nil
}

func (s *Store) GetRequest(_ context.Context, id uuid.UUID) (*domain.SpinRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.requests[id]
	if !ok {
		return nil, nil
	}
	return cloneRequest(r), nil
}

func (s *Store) GetPlayerStats(_ context.Context, player string) (*domain.PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.stats[player]
	if !ok {
		return nil, nil
	}
	c := *st
	return &c, nil
}

func (s *Store) ListRequestsByPayoutStatus(_ context.Context, status domain.PayoutStatus, limit int) ([]*domain.SpinRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.SpinRequest
	for _, r := range s.requests {
		if r.PayoutStatus == status {
			out = append(out, cloneRequest(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) UpdatePayoutStatusIfMatches(_ context.Context, id uuid.UUID, expected, next domain.PayoutStatus) (int64, error) {
	// Serialize with write transactions so a commit cannot overwrite this change
	s.writer.Lock()
	defer s.writer.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok || r.PayoutStatus != expected {
		return 0, nil
	}
	r.PayoutStatus = next
	if next == domain.PayoutStatusPaid {
		now := time.Now().UTC()
		r.PaidAt = &now
	}
	return 1, nil
}

type spinTx struct {
	store    *Store
	requests map[uuid.UUID]*domain.SpinRequest
	stats    map[string]*domain.PlayerStats
	done     bool
}

func (t *spinTx) InsertRequest(_ context.Context, req *domain.SpinRequest) error {
	if t.done {
		return errTxClosed
	}
	if _, ok := t.requests[req.ID]; ok {
		return repository.ErrDuplicateRequest
	}
	t.store.mu.RLock()
	_, exists := t.store.requests[req.ID]
	t.store.mu.RUnlock()
	if exists {
		return repository.ErrDuplicateRequest
	}
	t.requests[req.ID] = cloneRequest(req)
	return nil
}

func (t *spinTx) GetRequestForUpdate(_ context.Context, id uuid.UUID) (*domain.SpinRequest, error) {
	if t.done {
		return nil, errTxClosed
	}
	r := t.current(id)
	if r == nil {
		return nil, nil
	}
	return cloneRequest(r), nil
}

func (t *spinTx) CompleteRequestIfPending(_ context.Context, id uuid.UUID, c repository.Completion) (int64, error) {
	if t.done {
		return 0, errTxClosed
	}
	r := t.current(id)
	if r == nil || r.State != domain.SpinStatePending {
		return 0, nil
	}

	next := cloneRequest(r)
	result := c.Result
	fulfilledAt := c.FulfilledAt
	next.State = domain.SpinStateFulfilled
	next.Result = &result
	next.RandomValue = c.RandomValue
	next.PayoutStatus = c.PayoutStatus
	next.FulfilledAt = &fulfilledAt
	t.requests[id] = next
	return 1, nil
}

func (t *spinTx) GetPlayerStatsForUpdate(_ context.Context, player string) (*domain.PlayerStats, error) {
	if t.done {
		return nil, errTxClosed
	}
	if st, ok := t.stats[player]; ok {
		c := *st
		return &c, nil
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	if st, ok := t.store.stats[player]; ok {
		c := *st
		return &c, nil
	}
	return nil, nil
}

func (t *spinTx) UpsertPlayerStats(_ context.Context, st *domain.PlayerStats) error {
	if t.done {
		return errTxClosed
	}
	c := *st
	t.stats[st.Player] = &c
	return nil
}

func (t *spinTx) Commit(_ context.Context) error {
	if t.done {
		return errTxClosed
	}
	t.done = true

	t.store.mu.Lock()
	for id, r := range t.requests {
		t.store.requests[id] = r
	}
	for p, st := range t.stats {
		t.store.stats[p] = st
	}
	t.store.mu.Unlock()

	t.store.writer.Unlock()
	return nil
}

func (t *spinTx) Rollback(_ context.Context) error {
	if t.done {
		return errTxClosed
	}
	t.done = true
	t.store.writer.Unlock()
	return nil
}

// current returns the staged version of a request, falling back to the committed one
func (t *spinTx) current(id uuid.UUID) *domain.SpinRequest {
	if r, ok := t.requests[id]; ok {
		return r
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	return t.store.requests[id]
}

func cloneRequest(r *domain.SpinRequest) *domain.SpinRequest {
	c := *r
	if r.Result != nil {
		res := *r.Result
		c.Result = &res
	}
	if r.FulfilledAt != nil {
		at := *r.FulfilledAt
		c.FulfilledAt = &at
	}
	if r.PaidAt != nil {
		at := *r.PaidAt
		c.PaidAt = &at
	}
	return &c
}
