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

type ClassReadQueries interface {
	GetClassWithOccupancyByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.ClassWithOccupancyRow, error)
	ListClassesFirstPage(ctx context.Context, db query.DBTX, limit int32) ([]query.ClassWithOccupancyRow, error)
	ListClassesKeyset(ctx context.Context, db query.DBTX, arg query.ListClassesKeysetParams) ([]query.ClassWithOccupancyRow, error)
}

type ClassReadStore struct {
	queries ClassReadQueries
	db      query.DBTX
}

func NewClassReadStore(queries ClassReadQueries, db query.DBTX) *ClassReadStore {
	return &ClassReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ClassReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClassView, error) {
	row, err := r.queries.GetClassWithOccupancyByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find class by ID", err)
	}
	return rowToClassView(row), nil
}

func (r *ClassReadStore) FindFirstPage(ctx context.Context, limit int32) ([]*queries.ClassView, error) {
	rows, err := r.queries.ListClassesFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list classes first page", err)
	}
	return rowsToClassViews(rows), nil
}

func (r *ClassReadStore) FindKeyset(ctx context.Context, lastStartsAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ClassView, error) {
	params := query.ListClassesKeysetParams{
		StartsAt: pgconv.TimeToPgtype(lastStartsAt),
		ID:       lastID,
		Limit:    limit,
	}

	rows, err := r.queries.ListClassesKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list classes keyset", err)
	}
	return rowsToClassViews(rows), nil
}

func rowsToClassViews(rows []query.ClassWithOccupancyRow) []*queries.ClassView {
	result := make([]*queries.ClassView, len(rows))
	for i, row := range rows {
		result[i] = rowToClassView(row)
	}
	return result
}

func rowToClassView(row query.ClassWithOccupancyRow) *queries.ClassView {
	return &queries.ClassView{
		ID:         row.ID,
		Name:       row.Name,
		Instructor: row.Instructor,
		Capacity:   int(row.Capacity),
		Reserved:   int(row.Reserved),
		StartsAt:   pgconv.TimeFromPgtype(row.StartsAt),
		BasePrice:  row.BasePrice,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
