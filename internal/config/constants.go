package config

import "time"

// Game defaults mirror the reference deployment: 10 tokens per spin, even odds, double payout.
const (
	DefaultSpinCost             int64  = 10
	DefaultSpinWinThreshold     uint64 = 500
	DefaultSpinModulus          uint64 = 1000
	DefaultSpinPayoutMultiplier int64  = 2
)

const (
	DefaultCustodyAccount      = "spin-pool"
	DefaultTokenSymbol         = "SPIN"
	DefaultTokenDecimals       = 18
	DefaultOracleID            = "local-oracle"
	DefaultOracleDeliveryDelay = 2 * time.Second
)

const (
	DefaultWorkerCount         = 4
	DefaultWorkerQueueSize     = 100
	DefaultPayoutRetrySchedule = "@every 1m"
	DefaultPoolMonitorSchedule = "@every 5m"
	DefaultDeadLetterPath      = "logs/event_deadletter.jsonl"
	DefaultRateLimitRPS        = 10.0
	DefaultRateLimitBurst      = 20
)
