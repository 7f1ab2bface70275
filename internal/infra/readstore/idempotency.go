package readstore

import (
	"context"

	"fitness-booking/internal/infra"
	"fitness-booking/internal/infra/query"
	"fitness-booking/internal/pkg/pgconv"
	"fitness-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db query.DBTX, key uuid.UUID) (query.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
	}
}

// Get runs on the caller's transaction so it observes the claim made there.
func (r *IdempotencyReadStore) Get(ctx context.Context, tx query.DBTX, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, tx, key)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:           row.Key,
		Endpoint:      row.Endpoint,
		RequestHash:   row.RequestHash,
		ReservationID: pgconv.UUIDPtrFromPgtype(row.ReservationID),
		ExpiresAt:     pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}
