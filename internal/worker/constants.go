package worker

import "time"

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = time.Minute

// Job names, used as metric labels
const (
	JobNamePayoutRetry = "payout_retry"
	JobNamePoolMonitor = "pool_monitor"
	JobNameUnnamed     = "unnamed"
)

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed  = "Worker job failed"
	LogMsgWorkerJobPanic   = "Worker job panicked"
	LogMsgQueueFull        = "Worker queue full, job skipped"
	LogMsgPoolStopped      = "Worker pool stopped, job skipped"
	LogMsgWorkerPoolClosed = "Worker pool shut down"
)

// Log messages - payout retry job
const (
	LogMsgPayoutSweepStarted  = "Retrying failed payouts"
	LogMsgPayoutSweepFinished = "Payout retry sweep finished"
	LogMsgPayoutRetryFailed   = "Payout retry failed"
)

// Log messages - pool monitor job
const (
	LogMsgPoolBalance      = "Custody pool balance"
	LogMsgPoolBelowWater   = "Custody pool below low watermark, winning payouts may fail"
	LogMsgPoolBalanceError = "Failed to read custody pool balance"
)
