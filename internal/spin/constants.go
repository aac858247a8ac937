package spin

import "time"

// Result cache
const (
	ResultCacheSize = 4096
	ResultCacheTTL  = 10 * time.Minute
)

// DefaultFailedPayoutBatch bounds one sweep of failed payouts
const DefaultFailedPayoutBatch = 100

// Error context strings
const (
	ErrContextFailedToReadBalance   = "failed to read player balance"
	ErrContextFailedToReadAllowance = "failed to read player allowance"
	ErrContextFailedToRequestRandom = "failed to request randomness"
	ErrContextFailedToBeginTx       = "failed to begin transaction"
	ErrContextFailedToCommitTx      = "failed to commit transaction"
	ErrContextFailedToInsertRequest = "failed to store spin request"
	ErrContextFailedToGetRequest    = "failed to get spin request"
	ErrContextFailedToComplete      = "failed to complete spin request"
	ErrContextFailedToRecordStats   = "failed to record player stats"
	ErrContextFailedToClaimPayout   = "failed to claim payout"
	ErrContextFailedToListPayouts   = "failed to list payouts"
	ErrContextRefundFailed          = "refund of pulled cost failed"
)

// Error messages
const (
	ErrMsgPlayerRequired    = "player is required"
	ErrMsgRandomValueNeeded = "random value must be a non-negative integer"
)

// Log messages
const (
	LogMsgSpinRequested          = "Spin requested"
	LogMsgSpinFulfilled          = "Spin fulfilled"
	LogMsgUnauthorizedCallback   = "Rejected randomness callback from untrusted caller"
	LogMsgDuplicateFulfillment   = "Rejected duplicate fulfillment"
	LogMsgUnknownRequestCallback = "Randomness delivered for unknown request"
	LogMsgCostRefunded           = "Refunded spin cost after failed request"
	LogMsgRefundFailed           = "Failed to refund spin cost, manual reconciliation needed"
	LogMsgPayoutSettled          = "Payout settled"
	LogMsgPayoutFailed           = "Payout transfer failed"
	LogMsgPayoutUnconfirmed      = "Payout transfer unconfirmed, left processing for reconciliation"
	LogMsgPullUnconfirmed        = "Spin cost pull unconfirmed, manual reconciliation needed"
	LogMsgPayoutStatusFailed     = "Failed to update payout status"
	LogMsgPayoutStatusUnexpected = "Payout status changed concurrently"
	LogMsgPayoutRetry            = "Retrying payout"
)
