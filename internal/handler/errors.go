package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidRequestID      = "Invalid request id"
	ErrMsgInvalidRandomValue    = "Invalid random value"
	ErrMsgInvalidSignature      = "Invalid oracle signature"
	ErrMsgMissingOracleHeaders  = "Missing oracle identity or signature header"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
	ErrMsgInvalidAmount         = "Invalid token amount"
	ErrMsgAmountMustBePositive  = "Amount must be positive"
	ErrMsgAmountNegative        = "Amount must not be negative"
)

// Success messages for API responses
const (
	MsgSpinRequested        = "Spin requested, waiting for randomness"
	MsgRandomnessAccepted   = "Randomness accepted"
	MsgPayoutPendingRetry   = "Spin settled but the payout failed and will be retried"
	MsgPayoutUnconfirmed    = "Spin settled but the ledger has not confirmed the payout yet"
	MsgPayoutRetrySucceeded = "Payout settled"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgValidationFailed  = "Request validation failed"
	LogMsgServiceError      = "Service call failed"
	LogMsgCallbackBadSig    = "Oracle callback signature mismatch"
	LogMsgCallbackMalformed = "Malformed oracle callback"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgAdminMinted       = "Admin minted tokens"
	LogMsgAdminApproved     = "Admin set spin pool allowance"
)

// Request limits
const (
	MaxRequestBodyBytes = 1 << 16
	MaxPlayerLength     = 100
)

// Path parameters
const (
	ParamID      = "id"
	ParamPlayer  = "player"
	ParamAccount = "account"
	ParamOwner   = "owner"
)
