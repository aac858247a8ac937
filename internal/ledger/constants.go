package ledger

import "time"

// Rejection reasons
const (
	ErrMsgAllowanceExceeded = "transfer amount exceeds allowance"
	ErrMsgBalanceExceeded   = "transfer amount exceeds balance"
	ErrMsgNonPositiveAmount = "transfer amount must be positive"
)

// Amount parsing errors
const (
	ErrMsgAmountPrecision = "amount has more decimals than the token"
	ErrMsgAmountRange     = "amount out of range"
)

// Remote ledger actions
const (
	ActionBalance   = "balance"
	ActionAllowance = "allowance"
	ActionPull      = "pull"
	ActionPush      = "push"
)

const (
	StatusOK = "ok"

	DefaultHTTPTimeout = 10 * time.Second
)

const (
	LogMsgLedgerRejected    = "Ledger rejected request"
	LogMsgLedgerUnconfirmed = "Ledger request outcome unknown"
)
