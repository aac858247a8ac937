package worker

import (
	"context"
	"fmt"

	"github.com/osse101/BrandishSpin_Go/internal/ledger"
	"github.com/osse101/BrandishSpin_Go/internal/logger"
	"github.com/osse101/BrandishSpin_Go/internal/metrics"
)

// BalanceReader reads ledger balances
type BalanceReader interface {
	Custody() string
	BalanceOf(ctx context.Context, account string) (int64, error)
}

// PoolMonitorJob exports the custody pool balance and warns when it drops
// below the amount needed to cover winning payouts.
type PoolMonitorJob struct {
	ledger       BalanceReader
	lowWatermark int64
	decimals     int32
	symbol       string
}

// NewPoolMonitorJob creates a pool monitor. A lowWatermark of 0 disables the warning.
func NewPoolMonitorJob(l BalanceReader, lowWatermark int64, decimals int32, symbol string) *PoolMonitorJob {
	return &PoolMonitorJob{
		ledger:       l,
		lowWatermark: lowWatermark,
		decimals:     decimals,
		symbol:       symbol,
	}
}

func (j *PoolMonitorJob) Name() string { return JobNamePoolMonitor }

func (j *PoolMonitorJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	custody := j.ledger.Custody()

	balance, err := j.ledger.BalanceOf(ctx, custody)
	if err != nil {
		log.Error(LogMsgPoolBalanceError, "account", custody, "error", err)
		return fmt.Errorf("failed to read pool balance: %w", err)
	}

	metrics.PoolBalance.Set(float64(balance))
	display := ledger.FormatAmount(balance, j.decimals) + " " + j.symbol

	if j.lowWatermark > 0 && balance < j.lowWatermark {
		log.Warn(LogMsgPoolBelowWater,
			"account", custody,
			"balance", display,
			"low_watermark", ledger.FormatAmount(j.lowWatermark, j.decimals)+" "+j.symbol)
		return nil
	}
	log.Debug(LogMsgPoolBalance, "account", custody, "balance", display)
	return nil
}
