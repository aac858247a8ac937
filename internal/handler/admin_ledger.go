package handler

import (
	"net/http"

	"github.com/osse101/BrandishSpin_Go/internal/ledger"
	"github.com/osse101/BrandishSpin_Go/internal/logger"
)

// DevLedger is a ledger that can create tokens and set allowances directly.
// Only the in-memory ledger offers this.
type DevLedger interface {
	ledger.Client
	Mint(account string, amount int64)
	Approve(owner, spender string, amount int64)
}

// AdminMintRequest is the body of a development mint. Amount is in display
// units, e.g. "12.5".
type AdminMintRequest struct {
	Account string `json:"account" validate:"required,max=100,player"`
	Amount  string `json:"amount" validate:"required"`
}

// AdminApproveRequest sets how much the spin pool may pull from Owner
type AdminApproveRequest struct {
	Owner  string `json:"owner" validate:"required,max=100,player"`
	Amount string `json:"amount" validate:"required"`
}

// AdminLedgerHandler funds players on a development ledger
type AdminLedgerHandler struct {
	ledger  DevLedger
	display Display
}

// NewAdminLedgerHandler creates a new admin ledger handler
func NewAdminLedgerHandler(l DevLedger, display Display) *AdminLedgerHandler {
	return &AdminLedgerHandler{ledger: l, display: display}
}

// HandleAdminMint creates tokens in an account
// @Summary Mint tokens (in-memory ledger only)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminMintRequest true "Account and amount"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/ledger/mint [post]
func (h *AdminLedgerHandler) HandleAdminMint(w http.ResponseWriter, r *http.Request) {
	var req AdminMintRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Admin mint"); err != nil {
		return
	}

	amount, ok := h.parseAmount(w, req.Amount)
	if !ok {
		return
	}
	if amount <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgAmountMustBePositive)
		return
	}

	h.ledger.Mint(req.Account, amount)
	logger.FromContext(r.Context()).Info(LogMsgAdminMinted, "account", req.Account, "amount", amount)

	balance, err := h.ledger.BalanceOf(r.Context(), req.Account)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, BalanceResponse{
		Account:       req.Account,
		Amount:        balance,
		AmountDisplay: h.display.format(balance),
	})
}

// HandleAdminApprove sets the spin pool's allowance over an owner's tokens.
// A zero amount revokes it.
// @Summary Approve the spin pool (in-memory ledger only)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminApproveRequest true "Owner and amount"
// @Success 200 {object} AllowanceResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/ledger/approve [post]
func (h *AdminLedgerHandler) HandleAdminApprove(w http.ResponseWriter, r *http.Request) {
	var req AdminApproveRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Admin approve"); err != nil {
		return
	}

	amount, ok := h.parseAmount(w, req.Amount)
	if !ok {
		return
	}
	if amount < 0 {
		respondError(w, http.StatusBadRequest, ErrMsgAmountNegative)
		return
	}

	spender := h.ledger.Custody()
	h.ledger.Approve(req.Owner, spender, amount)
	logger.FromContext(r.Context()).Info(LogMsgAdminApproved, "owner", req.Owner, "spender", spender, "amount", amount)

	respondJSON(w, http.StatusOK, AllowanceResponse{
		Owner:         req.Owner,
		Spender:       spender,
		Amount:        amount,
		AmountDisplay: h.display.format(amount),
	})
}

func (h *AdminLedgerHandler) parseAmount(w http.ResponseWriter, s string) (int64, bool) {
	amount, err := ledger.ParseAmount(s, h.display.Decimals)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidAmount)
		return 0, false
	}
	return amount, true
}
