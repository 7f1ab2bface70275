package queries

import (
	"context"
	"time"

	"fitness-booking/internal/domain/capacity"
	"fitness-booking/internal/domain/pricing"
	"fitness-booking/internal/infra"
	"fitness-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ClassQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ClassView, error)
	List(ctx context.Context, after *Cursor, limit int) ([]*ClassView, *Cursor, error)
	Quote(ctx context.Context, classID, memberID uuid.UUID) (*QuoteView, error)
}

type ClassReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClassView, error)
	FindFirstPage(ctx context.Context, limit int32) ([]*ClassView, error)
	FindKeyset(ctx context.Context, lastStartsAt time.Time, lastID uuid.UUID, limit int32) ([]*ClassView, error)
}

type PriceCalculator interface {
	Calculate(basePrice float64, membership pricing.MembershipType, classStart time.Time, occupancyRate float64) (pricing.PriceBreakdown, error)
}

type classQueriesImpl struct {
	classes  ClassReadStore
	members  MemberReadStore
	pricing  PriceCalculator
	location *time.Location
}

func NewClassQueries(classes ClassReadStore, members MemberReadStore, pricing PriceCalculator, location *time.Location) ClassQueries {
	return &classQueriesImpl{
		classes:  classes,
		members:  members,
		pricing:  pricing,
		location: location,
	}
}

func (q *classQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ClassView, error) {
	c, err := q.classes.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrClassNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c, nil
}

func (q *classQueriesImpl) List(ctx context.Context, after *Cursor, limit int) ([]*ClassView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ClassView
	var err error
	if after.IsEmpty() {
		rows, err = q.classes.FindFirstPage(ctx, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	} else {
		lastStartsAt, lastID, derr := DecodeAfterCursor(after.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.classes.FindKeyset(ctx, lastStartsAt, lastID, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	}
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	items, next := page(rows, limit, func(c *ClassView) (time.Time, uuid.UUID) { return c.StartsAt, c.ID })
	return items, next, nil
}

// Quote previews the price of the next seat without reserving it.
func (q *classQueriesImpl) Quote(ctx context.Context, classID, memberID uuid.UUID) (*QuoteView, error) {
	m, err := q.members.FindByID(ctx, memberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrMemberNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c, err := q.GetByID(ctx, classID)
	if err != nil {
		return nil, err
	}

	if err := capacity.AssertNotExceeded(c.Capacity, c.Reserved); err != nil {
		return nil, err
	}

	membership, err := pricing.ParseMembershipType(m.Membership)
	if err != nil {
		return nil, err
	}

	occupancy := capacity.OccupancyRate(c.Capacity, c.Reserved)
	breakdown, err := q.pricing.Calculate(c.BasePrice, membership, c.StartsAt.In(q.location), occupancy)
	if err != nil {
		return nil, err
	}

	return &QuoteView{
		ClassID:          c.ID,
		MemberID:         m.ID,
		Membership:       membership.String(),
		BasePrice:        breakdown.BasePrice,
		MembershipFactor: breakdown.MembershipFactor,
		PeakFactor:       breakdown.PeakFactor,
		SurgeFactor:      breakdown.SurgeFactor,
		OccupancyRate:    occupancy,
		FinalPrice:       breakdown.FinalPrice,
	}, nil
}
