package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service error onto the response
func respondServiceError(w http.ResponseWriter, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError        = "Something went wrong"
	ErrMsgUnknownError              = "Unknown error"
	ErrMsgInvalidRequestError       = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError           = "Authentication failed. Please check your API key."
	ErrMsgTooManyRequestsError      = "Too many requests. Please try again later."
	ErrMsgInsufficientAllowanceErr  = "Approve the spin pool to spend at least the spin cost first"
	ErrMsgInsufficientBalanceError  = "Not enough tokens for a spin"
	ErrMsgUnknownRequestError       = "Spin request not found"
	ErrMsgAlreadyFulfilledError     = "Spin request already fulfilled"
	ErrMsgNotFulfilledError         = "Spin request is still waiting for randomness"
	ErrMsgUnauthorizedError         = "Caller is not the trusted randomness oracle"
	ErrMsgNoPayoutDueError          = "No payout is due for this spin"
	ErrMsgPayoutAlreadySettledError = "Payout already settled"
	ErrMsgPayoutInFlightError       = "Payout already in progress"
	ErrMsgTransferRejectedError     = "Token transfer was rejected by the ledger"
	ErrMsgLedgerUnconfirmedError    = "The ledger did not confirm the transfer. Check your balance before retrying."
	ErrMsgOracleUnavailableError    = "Randomness oracle unavailable. Your spin cost was refunded."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act on. A failed payout is reported as accepted: the
// outcome is committed and the payout stays retryable.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var payoutErr *domain.PayoutError
	if errors.As(err, &payoutErr) {
		if errors.Is(err, domain.ErrLedgerUnconfirmed) {
			return http.StatusAccepted, MsgPayoutUnconfirmed
		}
		return http.StatusAccepted, MsgPayoutPendingRetry
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientAllowance):
		return http.StatusBadRequest, ErrMsgInsufficientAllowanceErr
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusBadRequest, ErrMsgInsufficientBalanceError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrMsgUnauthorizedError
	case errors.Is(err, domain.ErrUnknownRequest):
		return http.StatusNotFound, ErrMsgUnknownRequestError
	case errors.Is(err, domain.ErrAlreadyFulfilled):
		return http.StatusConflict, ErrMsgAlreadyFulfilledError
	case errors.Is(err, domain.ErrNotFulfilled):
		return http.StatusConflict, ErrMsgNotFulfilledError
	case errors.Is(err, domain.ErrNoPayoutDue):
		return http.StatusConflict, ErrMsgNoPayoutDueError
	case errors.Is(err, domain.ErrPayoutAlreadySettled):
		return http.StatusConflict, ErrMsgPayoutAlreadySettledError
	case errors.Is(err, domain.ErrPayoutInFlight):
		return http.StatusConflict, ErrMsgPayoutInFlightError
	case errors.Is(err, domain.ErrOracleUnavailable):
		return http.StatusBadGateway, ErrMsgOracleUnavailableError
	case errors.Is(err, domain.ErrTransferRejected):
		return http.StatusBadGateway, ErrMsgTransferRejectedError
	case errors.Is(err, domain.ErrLedgerUnconfirmed):
		return http.StatusBadGateway, ErrMsgLedgerUnconfirmedError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
