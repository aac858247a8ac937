package stats

const (
	ErrMsgPlayerRequired     = "player is required"
	ErrMsgNegativeAmount     = "payout and cost must not be negative"
	ErrMsgPayoutOnLoss       = "losing spin cannot carry a payout"
	ErrMsgGetStatsFailed     = "failed to get player stats: %w"
	ErrMsgUpsertStatsFailed  = "failed to update player stats: %w"
	LogMsgSpinRecorded       = "Spin recorded in player stats"
	LogMsgFailedToLoadStats  = "Failed to load player stats"
	LogMsgFailedToWriteStats = "Failed to write player stats"
)
