package stats

import (
	"context"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
)

// Repository is the read side the stats service needs from storage
type Repository interface {
	GetPlayerStats(ctx context.Context, player string) (*domain.PlayerStats, error)
}
