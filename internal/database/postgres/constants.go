package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

const spinRequestColumns = `id, player, state, cost, oracle_handle, won, payout_amount, random_value,
	payout_status, created_at, fulfilled_at, paid_at`

const (
	queryInsertRequest = `INSERT INTO spin_requests
	(id, player, state, cost, oracle_handle, payout_status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	queryGetRequest = `SELECT ` + spinRequestColumns + ` FROM spin_requests WHERE id = $1`

	queryGetRequestForUpdate = queryGetRequest + ` FOR UPDATE`

	queryCompleteRequestIfPending = `UPDATE spin_requests
	SET state = 'Fulfilled', won = $2, payout_amount = $3, random_value = $4,
	    payout_status = $5, fulfilled_at = $6
	WHERE id = $1 AND state = 'Pending'`

	queryListByPayoutStatus = `SELECT ` + spinRequestColumns + ` FROM spin_requests
	WHERE payout_status = $1 ORDER BY created_at LIMIT $2`

	queryUpdatePayoutStatusIfMatches = `UPDATE spin_requests
	SET payout_status = $3,
	    paid_at = CASE WHEN $3 = 'paid' THEN NOW() ELSE paid_at END
	WHERE id = $1 AND payout_status = $2`

	queryGetPlayerStats = `SELECT player, spins, wins, losses, payouts, wagered, updated_at
	FROM player_stats WHERE player = $1`

	queryGetPlayerStatsForUpdate = queryGetPlayerStats + ` FOR UPDATE`

	queryUpsertPlayerStats = `INSERT INTO player_stats (player, spins, wins, losses, payouts, wagered, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, NOW())
	ON CONFLICT (player) DO UPDATE SET
	    spins = EXCLUDED.spins, wins = EXCLUDED.wins, losses = EXCLUDED.losses,
	    payouts = EXCLUDED.payouts, wagered = EXCLUDED.wagered, updated_at = NOW()`
)

// defaultListLimit caps list queries called with a non-positive limit
const defaultListLimit = 1000
