package reservation

import (
	"time"

	"fitness-booking/internal/domain/pricing"
)

// Pricing is the breakdown frozen at admission time.
type Pricing struct {
	PaidPrice           float64
	MembershipFactor    float64
	PeakFactor          float64
	SurgeFactor         float64
	OccupancyRateBefore float64
}

func PricingFrom(b pricing.PriceBreakdown, occupancyRate float64) Pricing {
	return Pricing{
		PaidPrice:           b.FinalPrice,
		MembershipFactor:    b.MembershipFactor,
		PeakFactor:          b.PeakFactor,
		SurgeFactor:         b.SurgeFactor,
		OccupancyRateBefore: occupancyRate,
	}
}

type Cancellation struct {
	CancelledAt  time.Time
	RefundAmount float64
	RefundRatio  float64
}
