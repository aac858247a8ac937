package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/BrandishSpin_Go/internal/ledger"
	"github.com/osse101/BrandishSpin_Go/internal/logger"
)

// BalanceResponse is an account's token balance
type BalanceResponse struct {
	Account       string `json:"account"`
	Amount        int64  `json:"amount"`
	AmountDisplay string `json:"amount_display"`
}

// AllowanceResponse is how much the spin pool may still pull from an owner
type AllowanceResponse struct {
	Owner         string `json:"owner"`
	Spender       string `json:"spender"`
	Amount        int64  `json:"amount"`
	AmountDisplay string `json:"amount_display"`
}

// accountParam reads and validates an account path parameter.
// If ok is false, the response has already been written.
func accountParam(r *http.Request, w http.ResponseWriter, name string) (string, bool) {
	account := chi.URLParam(r, name)
	if err := GetValidator().ValidateVar(account, "required,max=100,player"); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return "", false
	}
	return account, true
}

// HandleGetBalance handles GET requests for an account's ledger balance
// @Summary Get token balance
// @Tags ledger
// @Produce json
// @Param account path string true "Account"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /ledger/balance/{account} [get]
func HandleGetBalance(l ledger.Client, display Display) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := accountParam(r, w, ParamAccount)
		if !ok {
			return
		}

		balance, err := l.BalanceOf(r.Context(), account)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgServiceError, "op", "get_balance", "account", account, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, BalanceResponse{
			Account:       account,
			Amount:        balance,
			AmountDisplay: display.format(balance),
		})
	}
}

// HandleGetAllowance handles GET requests for what the spin pool may pull from an owner
// @Summary Get spin pool allowance
// @Description Spins fail with insufficient allowance until the owner approves at least the spin cost
// @Tags ledger
// @Produce json
// @Param owner path string true "Owner"
// @Success 200 {object} AllowanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /ledger/allowance/{owner} [get]
func HandleGetAllowance(l ledger.Client, display Display) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := accountParam(r, w, ParamOwner)
		if !ok {
			return
		}

		allowance, err := l.AllowanceOf(r.Context(), owner, l.Custody())
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgServiceError, "op", "get_allowance", "owner", owner, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, AllowanceResponse{
			Owner:         owner,
			Spender:       l.Custody(),
			Amount:        allowance,
			AmountDisplay: display.format(allowance),
		})
	}
}
