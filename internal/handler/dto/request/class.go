package request

import (
	"time"

	"fitness-booking/internal/domain/fitnessclass"
	"fitness-booking/internal/pkg/patch"
)

type ScheduleClassRequest struct {
	Name       string    `json:"name" binding:"required,max=100"`
	Instructor string    `json:"instructor" binding:"required,max=100"`
	Capacity   int       `json:"capacity" binding:"required,min=1,max=200"`
	StartsAt   time.Time `json:"starts_at" binding:"required"`
	BasePrice  *float64  `json:"base_price" binding:"required,min=0,max=10000"`
}

func (r ScheduleClassRequest) ToDomain(now time.Time) (*fitnessclass.FitnessClass, error) {
	name, err := fitnessclass.NewTitle(r.Name)
	if err != nil {
		return nil, err
	}

	instructor, err := fitnessclass.NewInstructor(r.Instructor)
	if err != nil {
		return nil, err
	}

	capacity, err := fitnessclass.NewCapacity(r.Capacity)
	if err != nil {
		return nil, err
	}

	// A missing price is rejected by the value object, not defaulted to zero
	basePrice, err := fitnessclass.NewBasePrice(patch.Coalesce(r.BasePrice, -1))
	if err != nil {
		return nil, err
	}

	return fitnessclass.NewFitnessClass(name, instructor, capacity, r.StartsAt, basePrice, now)
}
