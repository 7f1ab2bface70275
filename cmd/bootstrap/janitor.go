package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"fitness-booking/internal/infra/query"
	"fitness-booking/internal/infra/repository"
	"fitness-booking/internal/pkg/clock"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const idempotencySweepInterval = 10 * time.Minute

type ExpiredKeyDeleter interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

var JanitorModule = fx.Module("janitor",
	fx.Provide(
		fx.Private,
		newExpiredKeyDeleter,
	),
	fx.Invoke(StartIdempotencyJanitor),
)

func newExpiredKeyDeleter(q *query.Queries, pool *pgxpool.Pool) ExpiredKeyDeleter {
	return repository.NewIdempotencyRepository(q, pool)
}

// StartIdempotencyJanitor removes expired idempotency keys in the background.
// Expired keys are also reclaimed lazily on insert, so this only bounds table growth.
func StartIdempotencyJanitor(lc fx.Lifecycle, keys ExpiredKeyDeleter, clk clock.Clock, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(idempotencySweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						sweepIdempotencyKeys(ctx, keys, clk, logger)
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}

func sweepIdempotencyKeys(ctx context.Context, keys ExpiredKeyDeleter, clk clock.Clock, logger *slog.Logger) {
	deleted, err := keys.DeleteExpired(ctx, clk.Now())
	if err != nil {
		logger.Warn("failed to delete expired idempotency keys", "error", err.Error())
		return
	}
	if deleted > 0 {
		logger.Info("expired idempotency keys deleted", "count", deleted)
	}
}
