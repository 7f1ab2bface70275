//go:build unit || e2e

package builder

import (
	"time"

	"fitness-booking/internal/domain/fitnessclass"
	reqdto "fitness-booking/internal/handler/dto/request"
	"fitness-booking/internal/infra/query"
	"fitness-booking/internal/usecase/queries"
	"fitness-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ClassBuilder struct {
	ID         uuid.UUID
	Name       string
	Instructor string
	Capacity   int
	Reserved   int
	StartsAt   time.Time
	BasePrice  float64
	CreatedAt  time.Time
}

func NewClassBuilder() *ClassBuilder {
	return &ClassBuilder{
		ID:         uuid.New(),
		Name:       "Morning Yoga",
		Instructor: "Bob",
		Capacity:   10,
		Reserved:   0,
		StartsAt:   time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		BasePrice:  100,
		CreatedAt:  time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ClassBuilder) With(mutate func(*ClassBuilder)) *ClassBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ClassBuilder) BuildDomain() (*fitnessclass.FitnessClass, error) {
	name, err := fitnessclass.NewTitle(b.Name)
	if err != nil {
		return nil, err
	}

	instructor, err := fitnessclass.NewInstructor(b.Instructor)
	if err != nil {
		return nil, err
	}

	capacity, err := fitnessclass.NewCapacity(b.Capacity)
	if err != nil {
		return nil, err
	}

	basePrice, err := fitnessclass.NewBasePrice(b.BasePrice)
	if err != nil {
		return nil, err
	}

	return fitnessclass.NewFitnessClass(name, instructor, capacity, b.StartsAt, basePrice, b.CreatedAt)
}

func (b *ClassBuilder) BuildInfra() query.Classes {
	return query.Classes{
		ID:         b.ID,
		Name:       b.Name,
		Instructor: b.Instructor,
		Capacity:   int32(b.Capacity), // #nosec G115 -- test fixture
		StartsAt:   pgtype.Timestamptz{Time: b.StartsAt, Valid: true},
		BasePrice:  b.BasePrice,
		CreatedAt:  pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ClassBuilder) BuildInfraWithOccupancy() query.ClassWithOccupancyRow {
	return query.ClassWithOccupancyRow{
		ID:         b.ID,
		Name:       b.Name,
		Instructor: b.Instructor,
		Capacity:   int32(b.Capacity), // #nosec G115 -- test fixture
		StartsAt:   pgtype.Timestamptz{Time: b.StartsAt, Valid: true},
		BasePrice:  b.BasePrice,
		CreatedAt:  pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		Reserved:   int64(b.Reserved),
	}
}

func (b *ClassBuilder) BuildView() *queries.ClassView {
	return &queries.ClassView{
		ID:         b.ID,
		Name:       b.Name,
		Instructor: b.Instructor,
		Capacity:   b.Capacity,
		Reserved:   b.Reserved,
		StartsAt:   b.StartsAt,
		BasePrice:  b.BasePrice,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *ClassBuilder) BuildSnapshot() *shared.ClassSnapshot {
	return &shared.ClassSnapshot{
		ID:         b.ID,
		Name:       b.Name,
		Instructor: b.Instructor,
		Capacity:   b.Capacity,
		StartsAt:   b.StartsAt,
		BasePrice:  b.BasePrice,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *ClassBuilder) BuildScheduleRequestDTO() reqdto.ScheduleClassRequest {
	basePrice := b.BasePrice
	return reqdto.ScheduleClassRequest{
		Name:       b.Name,
		Instructor: b.Instructor,
		Capacity:   b.Capacity,
		StartsAt:   b.StartsAt,
		BasePrice:  &basePrice,
	}
}

// Fluent builder methods
func (b *ClassBuilder) WithID(id uuid.UUID) *ClassBuilder {
	b.ID = id
	return b
}

func (b *ClassBuilder) WithCapacity(capacity int) *ClassBuilder {
	b.Capacity = capacity
	return b
}

func (b *ClassBuilder) WithReserved(reserved int) *ClassBuilder {
	b.Reserved = reserved
	return b
}

func (b *ClassBuilder) WithStartsAt(startsAt time.Time) *ClassBuilder {
	b.StartsAt = startsAt
	return b
}

func (b *ClassBuilder) WithBasePrice(basePrice float64) *ClassBuilder {
	b.BasePrice = basePrice
	return b
}
