package repository

import (
	"context"

	"fitness-booking/internal/domain/reservation"
	"fitness-booking/internal/infra"
	"fitness-booking/internal/infra/query"
	"fitness-booking/internal/infra/repository/converter"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db query.DBTX, arg query.CreateReservationParams) error
	CancelReservation(ctx context.Context, db query.DBTX, arg query.CancelReservationParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      query.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db query.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx query.DBTX, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, tx, converter.ReservationToInfra(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

// MarkCancelled persists the cancellation only while the row is still confirmed.
func (r *ReservationRepository) MarkCancelled(ctx context.Context, tx query.DBTX, res *reservation.Reservation) error {
	if res.Cancellation() == nil {
		return infra.WrapRepoErr("reservation has no cancellation to persist", nil, infra.KindDBFailure)
	}

	affected, err := r.queries.CancelReservation(ctx, tx, converter.CancellationToInfra(res))
	if err != nil {
		return infra.WrapRepoErr("failed to cancel reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("confirmed reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
