package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
	"github.com/osse101/BrandishSpin_Go/internal/ledger"
	"github.com/osse101/BrandishSpin_Go/internal/logger"
	"github.com/osse101/BrandishSpin_Go/internal/outcome"
	"github.com/osse101/BrandishSpin_Go/internal/spin"
)

// CreateSpinRequest is the body of a paid spin request
type CreateSpinRequest struct {
	Player string `json:"player" validate:"required,max=100,player"`
}

// SpinRequestResponse describes a spin request
type SpinRequestResponse struct {
	RequestID    uuid.UUID           `json:"request_id"`
	Player       string              `json:"player"`
	State        domain.SpinState    `json:"state"`
	Cost         int64               `json:"cost"`
	OracleHandle string              `json:"oracle_handle,omitempty"`
	Result       *domain.SpinResult  `json:"result,omitempty"`
	RandomValue  string              `json:"random_value,omitempty"`
	PayoutStatus domain.PayoutStatus `json:"payout_status"`
	CreatedAt    time.Time           `json:"created_at"`
	FulfilledAt  *time.Time          `json:"fulfilled_at,omitempty"`
	PaidAt       *time.Time          `json:"paid_at,omitempty"`
}

func newSpinRequestResponse(req *domain.SpinRequest) SpinRequestResponse {
	return SpinRequestResponse{
		RequestID:    req.ID,
		Player:       req.Player,
		State:        req.State,
		Cost:         req.Cost,
		OracleHandle: req.OracleHandle,
		Result:       req.Result,
		RandomValue:  req.RandomValue,
		PayoutStatus: req.PayoutStatus,
		CreatedAt:    req.CreatedAt,
		FulfilledAt:  req.FulfilledAt,
		PaidAt:       req.PaidAt,
	}
}

// FulfilledResponse answers IsFulfilled
type FulfilledResponse struct {
	RequestID uuid.UUID `json:"request_id"`
	Fulfilled bool      `json:"fulfilled"`
}

// PlayerResponse answers GetPlayer
type PlayerResponse struct {
	RequestID uuid.UUID `json:"request_id"`
	Player    string    `json:"player"`
}

// SpinConfigResponse is the game configuration with display amounts
type SpinConfigResponse struct {
	domain.SpinConfig
	CostDisplay    string  `json:"cost_display"`
	PayoutDisplay  string  `json:"payout_display"`
	WinChance      string  `json:"win_chance"`
	ExpectedReturn float64 `json:"expected_return"`
}

// Display describes how token amounts are rendered
type Display struct {
	Decimals int32
	Symbol   string
}

func (d Display) format(amount int64) string {
	return ledger.FormatAmount(amount, d.Decimals) + " " + d.Symbol
}

// HandleCreateSpin handles paid spin requests
// @Summary Request a spin
// @Description Pulls the spin cost from the player's approved allowance and requests randomness
// @Tags spin
// @Accept json
// @Produce json
// @Param request body CreateSpinRequest true "Player"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /spins [post]
func HandleCreateSpin(svc spin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateSpinRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create spin"); err != nil {
			return
		}

		spinReq, err := svc.CreateRequest(r.Context(), req.Player)
		if err != nil {
			log.Warn(LogMsgServiceError, "op", "create_spin", "player", req.Player, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{
			Message: MsgSpinRequested,
			Data:    newSpinRequestResponse(spinReq),
		})
	}
}

// HandleGetSpin returns a spin request
// @Summary Get spin request
// @Tags spin
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} SpinRequestResponse
// @Failure 404 {object} ErrorResponse
// @Router /spins/{id} [get]
func HandleGetSpin(svc spin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetRequestID(r, w)
		if !ok {
			return
		}
		req, err := svc.GetRequest(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, newSpinRequestResponse(req))
	}
}

// HandleIsFulfilled reports whether a spin has its outcome
// @Summary Is spin fulfilled
// @Tags spin
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} FulfilledResponse
// @Failure 404 {object} ErrorResponse
// @Router /spins/{id}/fulfilled [get]
func HandleIsFulfilled(svc spin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetRequestID(r, w)
		if !ok {
			return
		}
		fulfilled, err := svc.IsFulfilled(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, FulfilledResponse{RequestID: id, Fulfilled: fulfilled})
	}
}

// HandleGetResult returns the outcome of a fulfilled spin
// @Summary Get spin result
// @Tags spin
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} domain.SpinResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /spins/{id}/result [get]
func HandleGetResult(svc spin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetRequestID(r, w)
		if !ok {
			return
		}
		result, err := svc.GetResult(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetPlayer returns the player who paid for a spin
// @Summary Get spin player
// @Tags spin
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} PlayerResponse
// @Failure 404 {object} ErrorResponse
// @Router /spins/{id}/player [get]
func HandleGetPlayer(svc spin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetRequestID(r, w)
		if !ok {
			return
		}
		player, err := svc.GetPlayer(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, PlayerResponse{RequestID: id, Player: player})
	}
}

// HandleRetryPayout re-sends a failed winning payout
// @Summary Retry payout
// @Tags spin
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} DataResponse
// @Success 202 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /spins/{id}/payout/retry [post]
func HandleRetryPayout(svc spin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		id, ok := GetRequestID(r, w)
		if !ok {
			return
		}
		req, err := svc.RetryPayout(r.Context(), id)
		if err != nil {
			log.Warn(LogMsgServiceError, "op", "retry_payout", "spin_id", id, "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{
			Message: MsgPayoutRetrySucceeded,
			Data:    newSpinRequestResponse(req),
		})
	}
}

// HandleGetConfig returns the game rules
// @Summary Get spin configuration
// @Tags spin
// @Produce json
// @Success 200 {object} SpinConfigResponse
// @Router /spin/config [get]
func HandleGetConfig(svc spin.Service, display Display) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := svc.Config()
		respondJSON(w, http.StatusOK, SpinConfigResponse{
			SpinConfig:     cfg,
			CostDisplay:    display.format(cfg.Cost),
			PayoutDisplay:  display.format(cfg.WinPayout()),
			WinChance:      winChance(cfg),
			ExpectedReturn: outcome.ExpectedReturn(cfg),
		})
	}
}

// winChance renders WinThreshold/Modulus as a percentage with two decimals
func winChance(cfg domain.SpinConfig) string {
	if cfg.Modulus == 0 {
		return "0%"
	}
	return ledger.FormatRatio(cfg.WinThreshold, cfg.Modulus, 2) + "%"
}
