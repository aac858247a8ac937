package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
)

func spinRouter(svc *MockSpinService) http.Handler {
	r := chi.NewRouter()
	r.Post("/spins", HandleCreateSpin(svc))
	r.Get("/spins/{id}", HandleGetSpin(svc))
	r.Get("/spins/{id}/fulfilled", HandleIsFulfilled(svc))
	r.Get("/spins/{id}/result", HandleGetResult(svc))
	r.Get("/spins/{id}/player", HandleGetPlayer(svc))
	r.Post("/spins/{id}/payout/retry", HandleRetryPayout(svc))
	r.Get("/spin/config", HandleGetConfig(svc, Display{Decimals: 0, Symbol: "SPIN"}))
	return r
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandleCreateSpin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockSpinService)
		created := &domain.SpinRequest{ID: uuid.New(), Player: "alice", State: domain.SpinStatePending, Cost: 10}
		svc.On("CreateRequest", mock.Anything, "alice").Return(created, nil)

		w := serve(spinRouter(svc), http.MethodPost, "/spins", `{"player":"alice"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp struct {
			Message string              `json:"message"`
			Data    SpinRequestResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, created.ID, resp.Data.RequestID)
		assert.Equal(t, domain.SpinStatePending, resp.Data.State)
		svc.AssertExpectations(t)
	})

	t.Run("Blank player", func(t *testing.T) {
		svc := new(MockSpinService)
		w := serve(spinRouter(svc), http.MethodPost, "/spins", `{"player":"   "}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"player"`)
		svc.AssertNotCalled(t, "CreateRequest", mock.Anything, mock.Anything)
	})

	t.Run("Malformed body", func(t *testing.T) {
		svc := new(MockSpinService)
		w := serve(spinRouter(svc), http.MethodPost, "/spins", `{"player":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"Insufficient balance", fmt.Errorf("%w: has 5", domain.ErrInsufficientBalance), http.StatusBadRequest, ErrMsgInsufficientBalanceError},
		{"Insufficient allowance", domain.ErrInsufficientAllowance, http.StatusBadRequest, ErrMsgInsufficientAllowanceErr},
		{"Pull rejected", fmt.Errorf("pull: %w", domain.ErrTransferRejected), http.StatusBadGateway, ErrMsgTransferRejectedError},
		{"Oracle down", domain.ErrOracleUnavailable, http.StatusBadGateway, ErrMsgOracleUnavailableError},
		{"Pull unconfirmed", fmt.Errorf("%w: timeout", domain.ErrLedgerUnconfirmed), http.StatusBadGateway, ErrMsgLedgerUnconfirmedError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockSpinService)
			svc.On("CreateRequest", mock.Anything, "alice").Return(nil, tt.err)

			w := serve(spinRouter(svc), http.MethodPost, "/spins", `{"player":"alice"}`)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.msg)
		})
	}
}

func TestHandleSpinQueries(t *testing.T) {
	id := uuid.New()

	t.Run("Invalid id", func(t *testing.T) {
		w := serve(spinRouter(new(MockSpinService)), http.MethodGet, "/spins/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequestID)
	})

	t.Run("Unknown request", func(t *testing.T) {
		svc := new(MockSpinService)
		svc.On("GetRequest", mock.Anything, id).Return(nil, domain.ErrUnknownRequest)

		w := serve(spinRouter(svc), http.MethodGet, "/spins/"+id.String(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Fulfilled flag", func(t *testing.T) {
		svc := new(MockSpinService)
		svc.On("IsFulfilled", mock.Anything, id).Return(false, nil)

		w := serve(spinRouter(svc), http.MethodGet, "/spins/"+id.String()+"/fulfilled", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"fulfilled":false`)
	})

	t.Run("Result before fulfillment", func(t *testing.T) {
		svc := new(MockSpinService)
		svc.On("GetResult", mock.Anything, id).Return(nil, domain.ErrNotFulfilled)

		w := serve(spinRouter(svc), http.MethodGet, "/spins/"+id.String()+"/result", "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Result", func(t *testing.T) {
		svc := new(MockSpinService)
		svc.On("GetResult", mock.Anything, id).Return(&domain.SpinResult{Won: true, PayoutAmount: 20}, nil)

		w := serve(spinRouter(svc), http.MethodGet, "/spins/"+id.String()+"/result", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"won":true,"payout_amount":20}`, w.Body.String())
	})

	t.Run("Player", func(t *testing.T) {
		svc := new(MockSpinService)
		svc.On("GetPlayer", mock.Anything, id).Return("alice", nil)

		w := serve(spinRouter(svc), http.MethodGet, "/spins/"+id.String()+"/player", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"player":"alice"`)
	})
}

func TestHandleRetryPayout(t *testing.T) {
	id := uuid.New()

	t.Run("Settled", func(t *testing.T) {
		svc := new(MockSpinService)
		svc.On("RetryPayout", mock.Anything, id).Return(&domain.SpinRequest{ID: id, PayoutStatus: domain.PayoutStatusPaid}, nil)

		w := serve(spinRouter(svc), http.MethodPost, "/spins/"+id.String()+"/payout/retry", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"payout_status":"paid"`)
	})

	t.Run("Still failing", func(t *testing.T) {
		svc := new(MockSpinService)
		svc.On("RetryPayout", mock.Anything, id).Return(nil, &domain.PayoutError{RequestID: id, Err: domain.ErrTransferRejected})

		w := serve(spinRouter(svc), http.MethodPost, "/spins/"+id.String()+"/payout/retry", "")
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("Already paid", func(t *testing.T) {
		svc := new(MockSpinService)
		svc.On("RetryPayout", mock.Anything, id).Return(nil, domain.ErrPayoutAlreadySettled)

		w := serve(spinRouter(svc), http.MethodPost, "/spins/"+id.String()+"/payout/retry", "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandleGetConfig(t *testing.T) {
	svc := new(MockSpinService)
	svc.On("Config").Return(domain.SpinConfig{Cost: 10, WinThreshold: 500, Modulus: 1000, PayoutMultiplier: 2})

	w := serve(spinRouter(svc), http.MethodGet, "/spin/config", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SpinConfigResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.Cost)
	assert.Equal(t, "20 SPIN", resp.PayoutDisplay)
	assert.Equal(t, "50.00%", resp.WinChance)
	assert.InDelta(t, 1.0, resp.ExpectedReturn, 1e-9)
}
