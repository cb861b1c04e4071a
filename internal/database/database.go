package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/crimson/internal/domain"
	"github.com/osse101/crimson/internal/logger"
)

// PoolConfig holds the connection settings for the ticket store
type PoolConfig struct {
	ConnString  string
	MaxConns    int
	MaxIdle     time.Duration
	MaxLifetime time.Duration
}

// NewPool creates a new PostgreSQL connection pool and verifies it with a ping.
// A malformed connection string fails with domain.ErrConfiguration, an
// unreachable server with domain.ErrStoreUnavailable.
func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrConfiguration, ErrMsgFailedToParseConnString, err)
	}

	maxConns := cfg.MaxConns
	if maxConns <= 0 {
		maxConns = DefaultMaxConnections
	}
	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	config.MaxConns = int32(maxConns)
	config.MinConns = DefaultMinConnections
	if config.MinConns > config.MaxConns {
		config.MinConns = config.MaxConns
	}
	config.MaxConnLifetime = valueOr(cfg.MaxLifetime, DefaultMaxConnLifetime)
	config.MaxConnIdleTime = valueOr(cfg.MaxIdle, DefaultMaxConnIdleTime)

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, ErrMsgFailedToCreatePool, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, DefaultPingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		logger.Error(ErrMsgFailedToPingDatabase, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, ErrMsgFailedToPingDatabase, err)
	}

	logger.Info(LogMsgSuccessfullyConnectedToDatabase, "max_conns", maxConns)
	return pool, nil
}

func valueOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
