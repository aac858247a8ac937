package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
	"github.com/osse101/BrandishSpin_Go/internal/repository"
)

// querier is satisfied by both the pool and a transaction
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// SpinRepository implements repository.Spin for PostgreSQL
type SpinRepository struct {
	db *pgxpool.Pool
}

// NewSpinRepository creates a new SpinRepository
func NewSpinRepository(db *pgxpool.Pool) *SpinRepository {
	return &SpinRepository{db: db}
}

var _ repository.Spin = (*SpinRepository)(nil)

// BeginSpinTx starts a transaction for creating or fulfilling a request
func (r *SpinRepository) BeginSpinTx(ctx context.Context) (repository.SpinTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &spinTx{tx: tx}, nil
}

// GetRequest retrieves a spin request by ID
func (r *SpinRepository) GetRequest(ctx context.Context, id uuid.UUID) (*domain.SpinRequest, error) {
	return getRequest(ctx, r.db, queryGetRequest, id)
}

// GetPlayerStats retrieves committed stats for a player
func (r *SpinRepository) GetPlayerStats(ctx context.Context, player string) (*domain.PlayerStats, error) {
	return getPlayerStats(ctx, r.db, queryGetPlayerStats, player)
}

// ListRequestsByPayoutStatus returns the oldest requests in a payout status
func (r *SpinRepository) ListRequestsByPayoutStatus(ctx context.Context, status domain.PayoutStatus, limit int) ([]*domain.SpinRequest, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := r.db.Query(ctx, queryListByPayoutStatus, string(status), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list spin requests: %w", err)
	}
	defer rows.Close()

	var out []*domain.SpinRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan spin request: %w", err)
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

// UpdatePayoutStatusIfMatches is a compare-and-set on payout_status
func (r *SpinRepository) UpdatePayoutStatusIfMatches(ctx context.Context, id uuid.UUID, expected, next domain.PayoutStatus) (int64, error) {
	tag, err := r.db.Exec(ctx, queryUpdatePayoutStatusIfMatches, id, string(expected), string(next))
	if err != nil {
		return 0, fmt.Errorf("failed to update payout status: %w", err)
	}
	return tag.RowsAffected(), nil
}

type spinTx struct {
	tx pgx.Tx
}

func (t *spinTx) InsertRequest(ctx context.Context, req *domain.SpinRequest) error {
	_, err := t.tx.Exec(ctx, queryInsertRequest,
		req.ID, req.Player, string(req.State), req.Cost, req.OracleHandle, string(req.PayoutStatus), req.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return repository.ErrDuplicateRequest
		}
		return fmt.Errorf("failed to insert spin request: %w", err)
	}
	return nil
}

func (t *spinTx) GetRequestForUpdate(ctx context.Context, id uuid.UUID) (*domain.SpinRequest, error) {
	return getRequest(ctx, t.tx, queryGetRequestForUpdate, id)
}

func (t *spinTx) CompleteRequestIfPending(ctx context.Context, id uuid.UUID, c repository.Completion) (int64, error) {
	tag, err := t.tx.Exec(ctx, queryCompleteRequestIfPending,
		id, c.Result.Won, c.Result.PayoutAmount, c.RandomValue, string(c.PayoutStatus), c.FulfilledAt)
	if err != nil {
		return 0, fmt.Errorf("failed to complete spin request: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (t *spinTx) GetPlayerStatsForUpdate(ctx context.Context, player string) (*domain.PlayerStats, error) {
	return getPlayerStats(ctx, t.tx, queryGetPlayerStatsForUpdate, player)
}

func (t *spinTx) UpsertPlayerStats(ctx context.Context, s *domain.PlayerStats) error {
	_, err := t.tx.Exec(ctx, queryUpsertPlayerStats, s.Player, s.Spins, s.Wins, s.Losses, s.Payouts, s.Wagered)
	if err != nil {
		return fmt.Errorf("failed to upsert player stats: %w", err)
	}
	return nil
}

func (t *spinTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *spinTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func getRequest(ctx context.Context, q querier, sql string, id uuid.UUID) (*domain.SpinRequest, error) {
	req, err := scanRequest(q.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get spin request: %w", err)
	}
	return req, nil
}

func getPlayerStats(ctx context.Context, q querier, sql, player string) (*domain.PlayerStats, error) {
	s, err := scanStats(q.QueryRow(ctx, sql, player))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}
	return s, nil
}
