package repository

import (
	"context"
	"time"

	"fitness-booking/internal/infra"
	"fitness-booking/internal/infra/query"
	"fitness-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db query.DBTX, arg query.TryInsertIdempotencyKeyParams) (int64, error)
	SetIdempotencyKeyReservation(ctx context.Context, db query.DBTX, arg query.SetIdempotencyKeyReservationParams) error
	DeleteExpiredIdempotencyKeys(ctx context.Context, db query.DBTX, now pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      query.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db query.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx query.DBTX, key uuid.UUID, endpoint, requestHash string, now, expiresAt time.Time) (bool, error) {
	params := query.TryInsertIdempotencyKeyParams{
		Key:         key,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
		CreatedAt:   pgconv.TimeToPgtype(now),
	}

	affected, err := r.queries.TryInsertIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}

	return affected > 0, nil
}

func (r *IdempotencyRepository) SetResult(ctx context.Context, tx query.DBTX, key, reservationID uuid.UUID) error {
	params := query.SetIdempotencyKeyReservationParams{
		Key:           key,
		ReservationID: pgconv.UUIDToPgtype(reservationID),
	}

	if err := r.queries.SetIdempotencyKeyReservation(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to store idempotency result", err)
	}

	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}

	return count, nil
}
