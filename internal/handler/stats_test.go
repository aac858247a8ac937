package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
)

func statsRouter(svc *MockStatsService) http.Handler {
	r := chi.NewRouter()
	r.Get("/stats/{player}", HandleGetPlayerStats(svc, Display{Decimals: 0, Symbol: "SPIN"}))
	return r
}

func TestHandleGetPlayerStats(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockStatsService)
		svc.On("GetStats", mock.Anything, "alice").
			Return(&domain.PlayerStats{Player: "alice", Spins: 3, Wins: 1, Losses: 2, Payouts: 20, Wagered: 30}, nil)

		w := serve(statsRouter(svc), http.MethodGet, "/stats/alice", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp PlayerStatsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(3), resp.Spins)
		assert.Equal(t, int64(33), resp.WinPercentage)
		assert.Equal(t, int64(-10), resp.ProfitLoss)
		assert.Equal(t, "-10 SPIN", resp.ProfitLossDisplay)
	})

	t.Run("Storage error", func(t *testing.T) {
		svc := new(MockStatsService)
		svc.On("GetStats", mock.Anything, "alice").Return(nil, errors.New("connection reset"))

		w := serve(statsRouter(svc), http.MethodGet, "/stats/alice", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}
