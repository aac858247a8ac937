// Package outcome turns an oracle random word into a spin result.
//
// The reduction is randomValue mod Modulus. For a uniform 256-bit word the
// probability of any reduced value deviates from 1/Modulus by at most
// Modulus/2^256, so capping Modulus at 2^64 keeps the bias below 2^-192.
package outcome

import (
	"fmt"
	"math"
	"math/big"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
)

// Reduce maps a random word onto [0, modulus)
func Reduce(randomValue *big.Int, modulus uint64) *big.Int {
	m := new(big.Int).SetUint64(modulus)
	return new(big.Int).Mod(randomValue, m)
}

// Evaluate decides win or loss and the payout for one spin. It is pure and deterministic.
func Evaluate(randomValue *big.Int, cfg domain.SpinConfig) (domain.SpinResult, error) {
	if randomValue == nil || randomValue.Sign() < 0 {
		return domain.SpinResult{}, fmt.Errorf("%w: random value must be a non-negative integer", domain.ErrInvalidInput)
	}
	if err := Validate(cfg); err != nil {
		return domain.SpinResult{}, err
	}

	reduced := Reduce(randomValue, cfg.Modulus)
	if reduced.Cmp(new(big.Int).SetUint64(cfg.WinThreshold)) < 0 {
		return domain.SpinResult{Won: true, PayoutAmount: cfg.WinPayout()}, nil
	}
	return domain.SpinResult{Won: false, PayoutAmount: 0}, nil
}

// Validate checks the rules once at startup so Evaluate can never overflow
func Validate(cfg domain.SpinConfig) error {
	switch {
	case cfg.Cost <= 0:
		return fmt.Errorf("%w: cost must be positive, got %d", domain.ErrInvalidConfig, cfg.Cost)
	case cfg.Modulus == 0:
		return fmt.Errorf("%w: modulus must be positive", domain.ErrInvalidConfig)
	case cfg.WinThreshold > cfg.Modulus:
		return fmt.Errorf("%w: win threshold %d exceeds modulus %d", domain.ErrInvalidConfig, cfg.WinThreshold, cfg.Modulus)
	case cfg.PayoutMultiplier < 0:
		return fmt.Errorf("%w: payout multiplier must not be negative, got %d", domain.ErrInvalidConfig, cfg.PayoutMultiplier)
	case cfg.PayoutMultiplier > 0 && cfg.Cost > math.MaxInt64/cfg.PayoutMultiplier:
		return fmt.Errorf("%w: cost %d x multiplier %d overflows", domain.ErrInvalidConfig, cfg.Cost, cfg.PayoutMultiplier)
	}
	return nil
}

// WinProbability returns the win chance as a fraction in [0,1], for display only
func WinProbability(cfg domain.SpinConfig) float64 {
	if cfg.Modulus == 0 {
		return 0
	}
	return float64(cfg.WinThreshold) / float64(cfg.Modulus)
}

// ExpectedReturn is the average payout per unit wagered, for display only.
// A value below 1 means the pool gains over time.
func ExpectedReturn(cfg domain.SpinConfig) float64 {
	return WinProbability(cfg) * float64(cfg.PayoutMultiplier)
}
