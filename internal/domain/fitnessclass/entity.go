package fitnessclass

import (
	"time"

	"github.com/google/uuid"
)

type FitnessClass struct {
	id         uuid.UUID
	name       Title
	instructor Instructor
	capacity   Capacity
	startsAt   time.Time
	basePrice  BasePrice
	createdAt  time.Time
}

func NewFitnessClass(name Title, instructor Instructor, capacity Capacity, startsAt time.Time, basePrice BasePrice, now time.Time) (*FitnessClass, error) {
	if startsAt.IsZero() {
		return nil, ErrMissingStartTime
	}
	return &FitnessClass{
		id:         uuid.New(),
		name:       name,
		instructor: instructor,
		capacity:   capacity,
		startsAt:   startsAt,
		basePrice:  basePrice,
		createdAt:  now,
	}, nil
}

func ReconstructFitnessClass(
	id uuid.UUID,
	name Title,
	instructor Instructor,
	capacity Capacity,
	startsAt time.Time,
	basePrice BasePrice,
	createdAt time.Time,
) *FitnessClass {
	return &FitnessClass{
		id:         id,
		name:       name,
		instructor: instructor,
		capacity:   capacity,
		startsAt:   startsAt,
		basePrice:  basePrice,
		createdAt:  createdAt,
	}
}

func (c *FitnessClass) ID() uuid.UUID          { return c.id }
func (c *FitnessClass) Name() Title            { return c.name }
func (c *FitnessClass) Instructor() Instructor { return c.instructor }
func (c *FitnessClass) Capacity() Capacity     { return c.capacity }
func (c *FitnessClass) StartsAt() time.Time    { return c.startsAt }
func (c *FitnessClass) BasePrice() BasePrice   { return c.basePrice }
func (c *FitnessClass) CreatedAt() time.Time   { return c.createdAt }
