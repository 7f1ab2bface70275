package repository

import (
	"context"
	"time"

	"fitness-booking/internal/infra"
	"fitness-booking/internal/infra/query"
	"fitness-booking/internal/pkg/pgconv"
)

type OutboxWriteQueries interface {
	InsertOutboxEvent(ctx context.Context, db query.DBTX, arg query.InsertOutboxEventParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      query.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db query.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Append(ctx context.Context, tx query.DBTX, topic string, payload []byte, at time.Time) error {
	params := query.InsertOutboxEventParams{
		Topic:     topic,
		Payload:   payload,
		CreatedAt: pgconv.TimeToPgtype(at),
	}

	if err := r.queries.InsertOutboxEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to append outbox event", err)
	}

	return nil
}
