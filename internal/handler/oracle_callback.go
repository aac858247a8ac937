package handler

import (
	"errors"
	"math/big"
	"net/http"

	"github.com/google/uuid"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
	"github.com/osse101/BrandishSpin_Go/internal/logger"
	"github.com/osse101/BrandishSpin_Go/internal/oracle"
	"github.com/osse101/BrandishSpin_Go/internal/spin"
)

// HandleOracleCallback accepts a random word from a remote oracle. The form
// body carries request_id and random_value. The signature, made with the
// shared oracle secret, also covers the caller identity header, which is then
// passed through so the registry can reject anything but its trusted oracle.
// @Summary Oracle randomness callback
// @Tags oracle
// @Accept x-www-form-urlencoded
// @Produce json
// @Param X-Oracle-ID header string true "Oracle identity"
// @Param X-Oracle-Signature header string true "HMAC over request_id, random_value and oracle_id"
// @Param request_id formData string true "Spin request ID"
// @Param random_value formData string true "Random word, decimal"
// @Success 200 {object} SuccessResponse
// @Success 202 {object} ErrorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /oracle/callback [post]
func HandleOracleCallback(svc spin.Service, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		caller := r.Header.Get(oracle.HeaderOracleID)
		sig := r.Header.Get(oracle.HeaderOracleSignature)
		if caller == "" || sig == "" {
			respondError(w, http.StatusUnauthorized, ErrMsgMissingOracleHeaders)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
		if err := r.ParseForm(); err != nil {
			log.Warn(LogMsgCallbackMalformed, "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		id, err := uuid.Parse(r.PostForm.Get(oracle.ParamRequestID))
		if err != nil {
			log.Warn(LogMsgCallbackMalformed, "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestID)
			return
		}
		value, ok := new(big.Int).SetString(r.PostForm.Get(oracle.ParamRandomValue), 10)
		if !ok {
			log.Warn(LogMsgCallbackMalformed, "spin_id", id)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRandomValue)
			return
		}

		if !oracle.VerifyCallback(secret, caller, id, value, sig) {
			log.Warn(LogMsgCallbackBadSig, "spin_id", id, "caller", caller)
			respondError(w, http.StatusUnauthorized, ErrMsgInvalidSignature)
			return
		}

		if err := svc.OnRandomnessReady(r.Context(), caller, id, value); err != nil {
			var payoutErr *domain.PayoutError
			if !errors.As(err, &payoutErr) {
				log.Warn(LogMsgServiceError, "op", "oracle_callback", "spin_id", id, "error", err)
			}
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRandomnessAccepted})
	}
}
