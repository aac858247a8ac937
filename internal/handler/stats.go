package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
	"github.com/osse101/BrandishSpin_Go/internal/logger"
	"github.com/osse101/BrandishSpin_Go/internal/stats"
)

// PlayerStatsResponse is a player's aggregate with derived figures
type PlayerStatsResponse struct {
	domain.PlayerStats
	WinPercentage     int64  `json:"win_percentage"`
	ProfitLoss        int64  `json:"profit_loss"`
	ProfitLossDisplay string `json:"profit_loss_display"`
}

// HandleGetPlayerStats handles GET requests for a player's spin statistics
// @Summary Get player stats
// @Description Spins, wins, losses, payouts and profit/loss for a player. Unknown players get zeroes.
// @Tags stats
// @Produce json
// @Param player path string true "Player"
// @Success 200 {object} PlayerStatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats/{player} [get]
func HandleGetPlayerStats(svc stats.Service, display Display) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		player := chi.URLParam(r, ParamPlayer)
		if err := GetValidator().ValidateVar(player, "required,max=100,player"); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		st, err := svc.GetStats(r.Context(), player)
		if err != nil {
			log.Error(LogMsgServiceError, "op", "get_stats", "player", player, "error", err)
			respondServiceError(w, err)
			return
		}

		pl := st.ProfitLoss()
		respondJSON(w, http.StatusOK, PlayerStatsResponse{
			PlayerStats:       *st,
			WinPercentage:     st.WinPercentage(),
			ProfitLoss:        pl,
			ProfitLossDisplay: display.format(pl),
		})
	}
}
