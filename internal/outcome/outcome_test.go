package outcome

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
)

var evenOdds = domain.SpinConfig{Cost: 10, WinThreshold: 500, Modulus: 1000, PayoutMultiplier: 2}

func TestEvaluate(t *testing.T) {
	huge, _ := new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10) // 2^256-1

	tests := []struct {
		name       string
		value      *big.Int
		wantWon    bool
		wantPayout int64
	}{
		{"reduced below threshold wins", big.NewInt(250), true, 20},
		{"reduced above threshold loses", big.NewInt(750), false, 0},
		{"threshold itself loses", big.NewInt(500), false, 0},
		{"zero wins", big.NewInt(0), true, 20},
		{"wraps modulus", big.NewInt(1250), true, 20},
		{"max 256-bit word", huge, false, 0}, // (2^256-1) mod 1000 = 935
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(tt.value, evenOdds)
			require.NoError(t, err)
			assert.Equal(t, tt.wantWon, res.Won)
			assert.Equal(t, tt.wantPayout, res.PayoutAmount)
		})
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	v := big.NewInt(123456789)
	a, err := Evaluate(v, evenOdds)
	require.NoError(t, err)
	b, err := Evaluate(v, evenOdds)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEvaluate_EdgeThresholds(t *testing.T) {
	never := evenOdds
	never.WinThreshold = 0
	res, err := Evaluate(big.NewInt(0), never)
	require.NoError(t, err)
	assert.False(t, res.Won)

	always := evenOdds
	always.WinThreshold = always.Modulus
	res, err = Evaluate(big.NewInt(999), always)
	require.NoError(t, err)
	assert.True(t, res.Won)
}

func TestEvaluate_RejectsBadInput(t *testing.T) {
	_, err := Evaluate(nil, evenOdds)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = Evaluate(big.NewInt(-1), evenOdds)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = Evaluate(big.NewInt(1), domain.SpinConfig{Cost: 10, Modulus: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(evenOdds))

	bad := []domain.SpinConfig{
		{Cost: 0, WinThreshold: 1, Modulus: 2, PayoutMultiplier: 2},
		{Cost: 10, WinThreshold: 3, Modulus: 2, PayoutMultiplier: 2},
		{Cost: 10, WinThreshold: 1, Modulus: 2, PayoutMultiplier: -1},
		{Cost: math.MaxInt64 / 2, WinThreshold: 1, Modulus: 2, PayoutMultiplier: 3},
	}
	for _, cfg := range bad {
		assert.ErrorIs(t, Validate(cfg), domain.ErrInvalidConfig, "%+v", cfg)
	}
}

func TestWinProbability(t *testing.T) {
	assert.InDelta(t, 0.5, WinProbability(evenOdds), 1e-9)
	assert.InDelta(t, 1.0, ExpectedReturn(evenOdds), 1e-9)
	assert.Equal(t, 0.0, WinProbability(domain.SpinConfig{}))
}

func TestReduce_Distribution(t *testing.T) {
	// Every residue class of a small modulus is hit exactly once per period.
	seen := make(map[int64]int)
	for i := int64(0); i < 600; i++ {
		seen[Reduce(big.NewInt(i), 6).Int64()]++
	}
	require.Len(t, seen, 6)
	for r, n := range seen {
		assert.Equal(t, 100, n, "residue %d", r)
	}
}
