package repository

import (
	"context"

	"fitness-booking/internal/domain/fitnessclass"
	"fitness-booking/internal/infra"
	"fitness-booking/internal/infra/query"
	"fitness-booking/internal/infra/repository/converter"
)

type ClassWriteQueries interface {
	CreateClass(ctx context.Context, db query.DBTX, arg query.CreateClassParams) error
}

type ClassRepository struct {
	queries ClassWriteQueries
	db      query.DBTX
}

func NewClassRepository(queries ClassWriteQueries, db query.DBTX) *ClassRepository {
	return &ClassRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ClassRepository) Create(ctx context.Context, tx query.DBTX, c *fitnessclass.FitnessClass) error {
	if err := r.queries.CreateClass(ctx, tx, converter.ClassToInfra(c)); err != nil {
		return infra.WrapRepoErr("failed to create class", err)
	}
	return nil
}
