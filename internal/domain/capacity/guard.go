package capacity

import (
	"fitness-booking/internal/pkg/errs"
)

var (
	ErrInvalidCapacity  = errs.Mark(errs.New("capacity must be > 0"), errs.ErrInvalidArgument)
	ErrNegativeReserved = errs.Mark(errs.New("current_reserved must be >= 0"), errs.ErrInvalidArgument)
	ErrClassFull        = errs.Mark(errs.New("no seat left in class"), errs.ErrCapacityExceeded)
)

// AssertNotExceeded reports whether one more seat can be admitted.
func AssertNotExceeded(capacity, currentReserved int) error {
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	if currentReserved < 0 {
		return ErrNegativeReserved
	}
	if currentReserved >= capacity {
		return ErrClassFull
	}
	return nil
}

// OccupancyRate is reserved/capacity before admitting the next seat.
func OccupancyRate(capacity, currentReserved int) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(currentReserved) / float64(capacity)
}
