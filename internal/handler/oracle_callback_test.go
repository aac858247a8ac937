package handler

import (
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
	"github.com/osse101/BrandishSpin_Go/internal/oracle"
)

const testOracleSecret = "oracle-secret"

func callbackRequest(id uuid.UUID, value *big.Int, caller, sig string) *http.Request {
	body := oracle.CallbackValues(id, value).Encode()
	req := httptest.NewRequest(http.MethodPost, "/oracle/callback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if caller != "" {
		req.Header.Set(oracle.HeaderOracleID, caller)
	}
	if sig != "" {
		req.Header.Set(oracle.HeaderOracleSignature, sig)
	}
	return req
}

func TestHandleOracleCallback(t *testing.T) {
	id := uuid.New()
	value := big.NewInt(250)
	goodSig := oracle.SignCallback(testOracleSecret, "vrf", id, value)

	t.Run("Accepted", func(t *testing.T) {
		svc := new(MockSpinService)
		svc.On("OnRandomnessReady", mock.Anything, "vrf", id, value).Return(nil)

		w := httptest.NewRecorder()
		HandleOracleCallback(svc, testOracleSecret).ServeHTTP(w, callbackRequest(id, value, "vrf", goodSig))

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Bad signature", func(t *testing.T) {
		svc := new(MockSpinService)
		forged := oracle.SignCallback("wrong", "vrf", id, value)

		w := httptest.NewRecorder()
		HandleOracleCallback(svc, testOracleSecret).ServeHTTP(w, callbackRequest(id, value, "vrf", forged))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		svc.AssertNotCalled(t, "OnRandomnessReady", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Tampered value", func(t *testing.T) {
		svc := new(MockSpinService)

		w := httptest.NewRecorder()
		HandleOracleCallback(svc, testOracleSecret).ServeHTTP(w, callbackRequest(id, big.NewInt(999), "vrf", goodSig))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Missing headers", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleOracleCallback(new(MockSpinService), testOracleSecret).ServeHTTP(w, callbackRequest(id, value, "", ""))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Identity header swapped", func(t *testing.T) {
		svc := new(MockSpinService)

		w := httptest.NewRecorder()
		HandleOracleCallback(svc, testOracleSecret).ServeHTTP(w, callbackRequest(id, value, "impostor", goodSig))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidSignature)
		svc.AssertNotCalled(t, "OnRandomnessReady", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Untrusted caller", func(t *testing.T) {
		svc := new(MockSpinService)
		svc.On("OnRandomnessReady", mock.Anything, "impostor", id, value).Return(domain.ErrUnauthorized)

		sig := oracle.SignCallback(testOracleSecret, "impostor", id, value)
		w := httptest.NewRecorder()
		HandleOracleCallback(svc, testOracleSecret).ServeHTTP(w, callbackRequest(id, value, "impostor", sig))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgUnauthorizedError)
	})

	t.Run("Duplicate delivery", func(t *testing.T) {
		svc := new(MockSpinService)
		svc.On("OnRandomnessReady", mock.Anything, "vrf", id, value).Return(domain.ErrAlreadyFulfilled)

		w := httptest.NewRecorder()
		HandleOracleCallback(svc, testOracleSecret).ServeHTTP(w, callbackRequest(id, value, "vrf", goodSig))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Payout failed after fulfillment", func(t *testing.T) {
		svc := new(MockSpinService)
		svc.On("OnRandomnessReady", mock.Anything, "vrf", id, value).
			Return(&domain.PayoutError{RequestID: id, Player: "alice", Amount: 20, Err: domain.ErrTransferRejected})

		w := httptest.NewRecorder()
		HandleOracleCallback(svc, testOracleSecret).ServeHTTP(w, callbackRequest(id, value, "vrf", goodSig))

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), MsgPayoutPendingRetry)
	})

	t.Run("Payout unconfirmed after fulfillment", func(t *testing.T) {
		svc := new(MockSpinService)
		svc.On("OnRandomnessReady", mock.Anything, "vrf", id, value).
			Return(&domain.PayoutError{RequestID: id, Player: "alice", Amount: 20, Err: domain.ErrLedgerUnconfirmed})

		w := httptest.NewRecorder()
		HandleOracleCallback(svc, testOracleSecret).ServeHTTP(w, callbackRequest(id, value, "vrf", goodSig))

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), MsgPayoutUnconfirmed)
	})

	t.Run("Malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/oracle/callback", strings.NewReader("request_id=nope&random_value=1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set(oracle.HeaderOracleID, "vrf")
		req.Header.Set(oracle.HeaderOracleSignature, "sig")

		w := httptest.NewRecorder()
		HandleOracleCallback(new(MockSpinService), testOracleSecret).ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
