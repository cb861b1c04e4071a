package postgres

import "time"

// PostgreSQL Error Classes
const (
	// PgErrorClassConnection is the SQLSTATE class for connection exceptions
	PgErrorClassConnection = "08"
	// PgErrorClassOperatorIntervention covers admin shutdown and startup states (57P01-57P05)
	PgErrorClassOperatorIntervention = "57P"
)

// DefaultQueryTimeout bounds a single leaderboard query
const DefaultQueryTimeout = 30 * time.Second

// Error Messages - Leaderboard Operations
const (
	ErrMsgInvalidWindow            = "time window must have start before end"
	ErrMsgFailedToQueryLeaderboard = "failed to query helper leaderboard"
	ErrMsgFailedToScanLeaderboard  = "failed to read helper leaderboard rows"
)

// Log Messages
const (
	LogMsgLeaderboardQueried = "Helper leaderboard queried"
)
