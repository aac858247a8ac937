package postgres

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
)

// ptrTime converts a pgtype.Timestamptz to *time.Time.
// Returns nil if the timestamp is not valid.
func ptrTime(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

// scanRequest maps one spin_requests row
func scanRequest(row pgx.Row) (*domain.SpinRequest, error) {
	var (
		r            domain.SpinRequest
		state        string
		payoutStatus string
		won          pgtype.Bool
		payout       pgtype.Int8
		randomValue  pgtype.Text
		createdAt    pgtype.Timestamptz
		fulfilledAt  pgtype.Timestamptz
		paidAt       pgtype.Timestamptz
	)

	err := row.Scan(&r.ID, &r.Player, &state, &r.Cost, &r.OracleHandle, &won, &payout, &randomValue,
		&payoutStatus, &createdAt, &fulfilledAt, &paidAt)
	if err != nil {
		return nil, err
	}

	r.State = domain.SpinState(state)
	r.PayoutStatus = domain.PayoutStatus(payoutStatus)
	r.RandomValue = randomValue.String
	r.CreatedAt = createdAt.Time.UTC()
	r.FulfilledAt = ptrTime(fulfilledAt)
	r.PaidAt = ptrTime(paidAt)
	if won.Valid {
		r.Result = &domain.SpinResult{Won: won.Bool, PayoutAmount: payout.Int64}
	}
	return &r, nil
}

func scanStats(row pgx.Row) (*domain.PlayerStats, error) {
	var (
		s         domain.PlayerStats
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&s.Player, &s.Spins, &s.Wins, &s.Losses, &s.Payouts, &s.Wagered, &updatedAt); err != nil {
		return nil, err
	}
	s.UpdatedAt = updatedAt.Time.UTC()
	return &s, nil
}
