package readstore

import (
	"context"
	"time"

	"fitness-booking/internal/infra"
	"fitness-booking/internal/infra/query"
	"fitness-booking/internal/pkg/pgconv"
	"fitness-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Reservations, error)
	ListReservationsByMemberFirstPage(ctx context.Context, db query.DBTX, arg query.ListReservationsByMemberFirstPageParams) ([]query.Reservations, error)
	ListReservationsByMemberKeyset(ctx context.Context, db query.DBTX, arg query.ListReservationsByMemberKeysetParams) ([]query.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      query.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db query.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return RowToReservationView(row), nil
}

func (r *ReservationReadStore) FindByMemberFirstPage(ctx context.Context, memberID uuid.UUID, limit int32) ([]*queries.ReservationView, error) {
	params := query.ListReservationsByMemberFirstPageParams{
		MemberID: memberID,
		Limit:    limit,
	}

	rows, err := r.queries.ListReservationsByMemberFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations first page", err)
	}

	return rowsToReservationViews(rows), nil
}

func (r *ReservationReadStore) FindByMemberKeyset(ctx context.Context, memberID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationView, error) {
	params := query.ListReservationsByMemberKeysetParams{
		MemberID:  memberID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	}

	rows, err := r.queries.ListReservationsByMemberKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations keyset", err)
	}

	return rowsToReservationViews(rows), nil
}

func rowsToReservationViews(rows []query.Reservations) []*queries.ReservationView {
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = RowToReservationView(row)
	}
	return result
}

func RowToReservationView(row query.Reservations) *queries.ReservationView {
	return &queries.ReservationView{
		ID:                  row.ID,
		MemberID:            row.MemberID,
		ClassID:             row.ClassID,
		PaidPrice:           row.PaidPrice,
		MembershipFactor:    row.MembershipFactor,
		PeakFactor:          row.PeakFactor,
		SurgeFactor:         row.SurgeFactor,
		OccupancyRateBefore: row.OccupancyRateBefore,
		Status:              row.Status,
		RefundAmount:        row.RefundAmount,
		RefundRatio:         row.RefundRatio,
		CancelledAt:         pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
