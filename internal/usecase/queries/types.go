package queries

import (
	"time"

	"github.com/google/uuid"
)

// MemberView represents read-optimized member data
type MemberView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Membership string    `json:"membership"`
	CreatedAt  time.Time `json:"created_at"`
}

// ClassView carries the live occupancy next to the class definition
type ClassView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Instructor string    `json:"instructor"`
	Capacity   int       `json:"capacity"`
	Reserved   int       `json:"reserved"`
	StartsAt   time.Time `json:"starts_at"`
	BasePrice  float64   `json:"base_price"`
	CreatedAt  time.Time `json:"created_at"`
}

func (v *ClassView) Available() int {
	if v.Reserved >= v.Capacity {
		return 0
	}
	return v.Capacity - v.Reserved
}

type ReservationView struct {
	ID                  uuid.UUID  `json:"id"`
	MemberID            uuid.UUID  `json:"member_id"`
	ClassID             uuid.UUID  `json:"class_id"`
	PaidPrice           float64    `json:"paid_price"`
	MembershipFactor    float64    `json:"membership_factor"`
	PeakFactor          float64    `json:"peak_factor"`
	SurgeFactor         float64    `json:"surge_factor"`
	OccupancyRateBefore float64    `json:"occupancy_rate_before"`
	Status              string     `json:"status"`
	RefundAmount        float64    `json:"refund_amount"`
	RefundRatio         float64    `json:"refund_ratio"`
	CancelledAt         *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

// QuoteView is the price a member would pay for the next seat right now
type QuoteView struct {
	ClassID          uuid.UUID `json:"class_id"`
	MemberID         uuid.UUID `json:"member_id"`
	Membership       string    `json:"membership"`
	BasePrice        float64   `json:"base_price"`
	MembershipFactor float64   `json:"membership_factor"`
	PeakFactor       float64   `json:"peak_factor"`
	SurgeFactor      float64   `json:"surge_factor"`
	OccupancyRate    float64   `json:"occupancy_rate"`
	FinalPrice       float64   `json:"final_price"`
}
