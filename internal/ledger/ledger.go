// Package ledger adapts the external fungible-token ledger that holds player
// balances and the custody pool.
package ledger

import (
	"context"
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Client is the subset of a standard token ledger the spin service needs.
// Amounts are integer base units. Rejected transfers wrap domain.ErrTransferRejected;
// failures that leave the outcome unknown wrap domain.ErrLedgerUnconfirmed.
type Client interface {
	// Custody is the account holding pooled tokens
	Custody() string
	BalanceOf(ctx context.Context, account string) (int64, error)
	// AllowanceOf returns how much spender may pull from owner
	AllowanceOf(ctx context.Context, owner, spender string) (int64, error)
	// Pull moves amount from a player into custody using the player's allowance
	Pull(ctx context.Context, from string, amount int64, reference string) error
	// Push moves amount out of custody to a player
	Push(ctx context.Context, to string, amount int64, reference string) error
}

// FormatAmount renders base units with the token's decimals, e.g. 1500 with 2 decimals is "15".
func FormatAmount(amount int64, decimals int32) string {
	return decimal.New(amount, -decimals).String()
}

// ParseAmount converts a human-readable token amount into base units. Amounts
// finer than the token's decimals or outside int64 are rejected.
func ParseAmount(s string, decimals int32) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	units := d.Shift(decimals)
	if !units.Equal(units.Truncate(0)) {
		return 0, fmt.Errorf("%s: %s", ErrMsgAmountPrecision, s)
	}
	if units.Abs().GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, fmt.Errorf("%s: %s", ErrMsgAmountRange, s)
	}
	return units.IntPart(), nil
}

// FormatRatio renders num/den as a percentage rounded to places, e.g. 500/1000 is "50.00"
func FormatRatio(num, den uint64, places int32) string {
	n := decimal.NewFromBigInt(new(big.Int).SetUint64(num), 0)
	d := decimal.NewFromBigInt(new(big.Int).SetUint64(den), 0)
	return n.Mul(decimal.NewFromInt(100)).DivRound(d, places).StringFixed(places)
}
