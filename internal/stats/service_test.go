package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishSpin_Go/internal/database/memory"
	"github.com/osse101/BrandishSpin_Go/internal/domain"
)

func record(t *testing.T, store *memory.Store, svc Service, player string, won bool, payout int64) {
	t.Helper()
	ctx := context.Background()
	tx, err := store.BeginSpinTx(ctx)
	require.NoError(t, err)
	_, err = svc.RecordSpin(ctx, tx, player, won, payout, 10)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
}

func TestGetStats_UnknownPlayerIsZeroed(t *testing.T) {
	svc := NewService(memory.NewStore())

	st, err := svc.GetStats(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", st.Player)
	assert.Equal(t, int64(0), st.Spins)
	assert.Equal(t, int64(0), st.WinPercentage())
	assert.Equal(t, int64(0), st.ProfitLoss())
}

func TestRecordSpin_Aggregates(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store)

	record(t, store, svc, "alice", true, 20)
	record(t, store, svc, "alice", false, 0)
	record(t, store, svc, "alice", true, 20)
	record(t, store, svc, "bob", false, 0)

	alice, err := svc.GetStats(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(3), alice.Spins)
	assert.Equal(t, int64(2), alice.Wins)
	assert.Equal(t, int64(1), alice.Losses)
	assert.Equal(t, int64(40), alice.Payouts)
	assert.Equal(t, int64(10), alice.ProfitLoss())
	assert.Equal(t, int64(66), alice.WinPercentage())
	assert.False(t, alice.UpdatedAt.IsZero())

	bob, err := svc.GetStats(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, bob.Spins, bob.Wins+bob.Losses)
	assert.Equal(t, int64(-10), bob.ProfitLoss())
}

func TestRecordSpin_NotVisibleUntilCommit(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewService(store)

	tx, err := store.BeginSpinTx(ctx)
	require.NoError(t, err)
	_, err = svc.RecordSpin(ctx, tx, "alice", true, 20, 10)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))

	st, err := svc.GetStats(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(0), st.Spins)
}

func TestRecordSpin_RejectsInvalid(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewService(store)
	tx, err := store.BeginSpinTx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = svc.RecordSpin(ctx, tx, "", true, 20, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.RecordSpin(ctx, tx, "alice", false, 20, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.RecordSpin(ctx, tx, "alice", true, -1, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

type failingTx struct{ err error }

func (f failingTx) GetPlayerStatsForUpdate(context.Context, string) (*domain.PlayerStats, error) {
	return nil, f.err
}

func (f failingTx) UpsertPlayerStats(context.Context, *domain.PlayerStats) error { return f.err }

type failingRepo struct{}

func (failingRepo) GetPlayerStats(context.Context, string) (*domain.PlayerStats, error) {
	return nil, errors.New("connection timeout")
}

func TestStorageErrorsPropagate(t *testing.T) {
	svc := NewService(failingRepo{})

	_, err := svc.GetStats(context.Background(), "alice")
	assert.ErrorContains(t, err, "connection timeout")

	_, err = svc.RecordSpin(context.Background(), failingTx{err: errors.New("deadlock detected")}, "alice", false, 0, 10)
	assert.ErrorContains(t, err, "deadlock detected")
}
