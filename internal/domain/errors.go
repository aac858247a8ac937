package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Funding errors
	ErrMsgInsufficientAllowance = "insufficient allowance"
	ErrMsgInsufficientBalance   = "insufficient balance"
	ErrMsgTransferRejected      = "token transfer rejected"
	ErrMsgLedgerUnconfirmed     = "ledger did not confirm the transfer"

	// Request lifecycle errors
	ErrMsgUnknownRequest    = "unknown spin request"
	ErrMsgAlreadyFulfilled  = "spin request already fulfilled"
	ErrMsgNotFulfilled      = "spin request not fulfilled"
	ErrMsgUnauthorized      = "caller is not the trusted randomness oracle"
	ErrMsgOracleUnavailable = "randomness oracle unavailable"

	// Payout errors
	ErrMsgPayoutFailed         = "payout failed"
	ErrMsgNoPayoutDue          = "no payout due for spin request"
	ErrMsgPayoutAlreadySettled = "payout already settled"
	ErrMsgPayoutInFlight       = "payout already in progress"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"

	// Input errors
	ErrMsgInvalidInput  = "invalid input"
	ErrMsgInvalidConfig = "invalid spin configuration"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientAllowance = errors.New(ErrMsgInsufficientAllowance)
	ErrInsufficientBalance   = errors.New(ErrMsgInsufficientBalance)
	ErrTransferRejected      = errors.New(ErrMsgTransferRejected)
	// ErrLedgerUnconfirmed means the ledger may or may not have applied the
	// operation, so it must not be retried blindly.
	ErrLedgerUnconfirmed = errors.New(ErrMsgLedgerUnconfirmed)

	ErrUnknownRequest    = errors.New(ErrMsgUnknownRequest)
	ErrAlreadyFulfilled  = errors.New(ErrMsgAlreadyFulfilled)
	ErrNotFulfilled      = errors.New(ErrMsgNotFulfilled)
	ErrUnauthorized      = errors.New(ErrMsgUnauthorized)
	ErrOracleUnavailable = errors.New(ErrMsgOracleUnavailable)

	ErrPayoutFailed         = errors.New(ErrMsgPayoutFailed)
	ErrNoPayoutDue          = errors.New(ErrMsgNoPayoutDue)
	ErrPayoutAlreadySettled = errors.New(ErrMsgPayoutAlreadySettled)
	ErrPayoutInFlight       = errors.New(ErrMsgPayoutInFlight)

	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)
)

// PayoutError reports a winning spin whose outcome is committed but whose
// transfer out of the custody pool did not go through. A rejected payout can be
// retried; one wrapping ErrLedgerUnconfirmed must be reconciled first.
type PayoutError struct {
	RequestID uuid.UUID
	Player    string
	Amount    int64
	Err       error
}

func (e *PayoutError) Error() string {
	return fmt.Sprintf("%s: request %s owes %d to %s: %v", ErrMsgPayoutFailed, e.RequestID, e.Amount, e.Player, e.Err)
}

// Unwrap exposes both ErrPayoutFailed and the underlying transfer error to errors.Is.
func (e *PayoutError) Unwrap() []error {
	return []error{ErrPayoutFailed, e.Err}
}
