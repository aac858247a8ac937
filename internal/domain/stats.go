package domain

import "time"

// PlayerStats aggregates fulfilled spins for one player.
// Spins == Wins + Losses always holds.
type PlayerStats struct {
	Player    string    `json:"player"`
	Spins     int64     `json:"spins"`
	Wins      int64     `json:"wins"`
	Losses    int64     `json:"losses"`
	Payouts   int64     `json:"payouts"`
	Wagered   int64     `json:"wagered"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// ProfitLoss is total payouts minus total cost wagered. Negative means net loss.
func (s PlayerStats) ProfitLoss() int64 {
	return s.Payouts - s.Wagered
}

// WinPercentage is the integer percentage of winning spins, 0 with no spins
func (s PlayerStats) WinPercentage() int64 {
	if s.Spins == 0 {
		return 0
	}
	return s.Wins * 100 / s.Spins
}

// Record applies one fulfilled spin to the aggregate
func (s *PlayerStats) Record(won bool, payout, cost int64) {
	s.Spins++
	s.Wagered += cost
	if won {
		s.Wins++
		s.Payouts += payout
	} else {
		s.Losses++
	}
}
