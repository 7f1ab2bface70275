package queries

import (
	"context"
	"time"

	"fitness-booking/internal/infra"
	"fitness-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByMember(ctx context.Context, memberID uuid.UUID, after *Cursor, limit int) ([]*ReservationView, *Cursor, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByMemberFirstPage(ctx context.Context, memberID uuid.UUID, limit int32) ([]*ReservationView, error)
	FindByMemberKeyset(ctx context.Context, memberID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReadStore
	members      MemberReadStore
}

func NewReservationQueries(reservations ReservationReadStore, members MemberReadStore) ReservationQueries {
	return &reservationQueriesImpl{
		reservations: reservations,
		members:      members,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	r, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return r, nil
}

// ListByMember pages newest first.
func (q *reservationQueriesImpl) ListByMember(ctx context.Context, memberID uuid.UUID, after *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	if _, err := q.members.FindByID(ctx, memberID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrMemberNotFound
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	limit = ValidateLimit(limit)
	var rows []*ReservationView
	var err error
	if after.IsEmpty() {
		rows, err = q.reservations.FindByMemberFirstPage(ctx, memberID, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(after.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.reservations.FindByMemberKeyset(ctx, memberID, lastCreatedAt, lastID, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	}
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	items, next := page(rows, limit, func(r *ReservationView) (time.Time, uuid.UUID) { return r.CreatedAt, r.ID })
	return items, next, nil
}
