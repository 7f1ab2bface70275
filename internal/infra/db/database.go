package db

import (
	"context"
	"log/slog"
	"time"

	"fitness-booking/internal/pkg/config"
	"fitness-booking/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect keeps retrying until the database answers a ping or cfg.ConnectTimeout elapses.
func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to parse database DSN")
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	poolConfig.MaxConnLifetime = time.Hour

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxInterval = 5 * time.Second
	retryPolicy.MaxElapsedTime = timeout

	var pool *pgxpool.Pool
	err = backoff.RetryNotify(
		func() error {
			p, err := pgxpool.NewWithConfig(ctx, poolConfig)
			if err != nil {
				return errs.Wrap(err, "open pool")
			}
			if err := p.Ping(ctx); err != nil {
				p.Close()
				return errs.Wrap(err, "ping")
			}
			pool = p
			return nil
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, next time.Duration) {
			slog.Warn("database connection failed, retrying",
				"host", cfg.Host,
				"database", cfg.DBName,
				"next_attempt_in", next,
				"error", err.Error())
		},
	)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to database")
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}
