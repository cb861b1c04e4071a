package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/crimson/internal/domain"
	"github.com/osse101/crimson/internal/logger"
)

// helperLeaderboardQuery counts closures per helper in [$1, $2).
const helperLeaderboardQuery = `
SELECT u."slackId" AS slack_id, COUNT(*) AS tickets_closed
FROM "Ticket" t
JOIN "User" u ON u."id" = t."closedById"
WHERE
    u."helper" = true
    AND t."closedAt" >= $1::timestamptz
    AND t."closedAt" < $2::timestamptz
GROUP BY u."slackId"
ORDER BY tickets_closed DESC
`

// DBTX is the subset of pgxpool.Pool used by the repositories
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type helperCountRow struct {
	SlackID       string `db:"slack_id"`
	TicketsClosed int64  `db:"tickets_closed"`
}

// LeaderboardRepository reads helper activity from the Nephthys ticket store
type LeaderboardRepository struct {
	db      DBTX
	timeout time.Duration
}

// NewLeaderboardRepository creates a new LeaderboardRepository. A
// non-positive timeout uses DefaultQueryTimeout.
func NewLeaderboardRepository(db DBTX, timeout time.Duration) *LeaderboardRepository {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return &LeaderboardRepository{
		db:      db,
		timeout: timeout,
	}
}

// HelperActivity counts tickets closed by each helper in the window.
func (r *LeaderboardRepository) HelperActivity(ctx context.Context, window domain.TimeWindow) (domain.HelperActivity, error) {
	if window.IsZero() || !window.Start().Before(window.End()) {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuery, ErrMsgInvalidWindow)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, helperLeaderboardQuery, window.Start(), window.End())
	if err != nil {
		return nil, classifyError(ErrMsgFailedToQueryLeaderboard, err)
	}

	counts, err := pgx.CollectRows(rows, pgx.RowToStructByName[helperCountRow])
	if err != nil {
		return nil, classifyError(ErrMsgFailedToScanLeaderboard, err)
	}

	activity := make(domain.HelperActivity, len(counts))
	for _, row := range counts {
		if row.TicketsClosed <= 0 {
			continue
		}
		activity[row.SlackID] = row.TicketsClosed
	}

	logger.FromContext(ctx).Debug(LogMsgLeaderboardQueried,
		"start", window.Start(), "end", window.End(), "helpers", len(activity))
	return activity, nil
}

// classifyError maps connection-level failures to domain.ErrStoreUnavailable
// and everything else to domain.ErrQuery.
func classifyError(msg string, err error) error {
	if isUnavailable(err) {
		return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, msg, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrQuery, msg, err)
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08 is "connection exception", 57P0x are shutdown/startup states
		return len(pgErr.Code) == 5 && (pgErr.Code[:2] == PgErrorClassConnection || pgErr.Code[:3] == PgErrorClassOperatorIntervention)
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
