package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/BrandishSpin_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// On error the response has already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgValidationFailed, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetRequestID parses the {id} path parameter.
// If ok is false, the response has already been written.
func GetRequestID(r *http.Request, w http.ResponseWriter) (uuid.UUID, bool) {
	raw := chi.URLParam(r, ParamID)
	if raw == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, ParamID))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestID)
		return uuid.Nil, false
	}
	return id, true
}
