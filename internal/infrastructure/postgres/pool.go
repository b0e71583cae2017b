package postgres

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/architeacher/devicedomains/internal/config"
	"github.com/architeacher/devicedomains/pkg/logger"
)

// ConnString renders cfg as a postgres URL with credentials escaped.
func ConnString(cfg config.Database) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     cfg.Host + ":" + strconv.FormatUint(uint64(cfg.Port), 10),
		Path:     cfg.Database,
		RawQuery: url.Values{"sslmode": []string{cfg.SSLMode}}.Encode(),
	}

	return u.String()
}

// NewPool connects and pings, retrying with exponential backoff while the
// database is still starting.
func NewPool(ctx context.Context, cfg config.Database, retry config.Backoff, log logger.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(ConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolConfig.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = retry.InitialInterval
	expBackoff.Multiplier = retry.Multiplier
	expBackoff.MaxInterval = retry.MaxInterval

	attempt := 0
	operation := func() (*pgxpool.Pool, error) {
		attempt++

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("creating connection pool: %w", err))
		}

		if err := pool.Ping(ctx); err != nil {
			pool.Close()

			log.Warn().
				Err(err).
				Int("attempt", attempt).
				Str("host", cfg.Host).
				Msg("database not reachable yet")

			return nil, fmt.Errorf("pinging database: %w", err)
		}

		return pool, nil
	}

	pool, err := backoff.Retry(
		ctx,
		operation,
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxElapsedTime(retry.MaxElapsedTime),
	)
	if err != nil {
		return nil, err
	}

	return pool, nil
}
