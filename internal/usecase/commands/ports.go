package commands

import (
	"time"

	"fitness-booking/internal/domain/pricing"
	"fitness-booking/internal/domain/refund"
)

type PriceCalculator interface {
	Calculate(basePrice float64, membership pricing.MembershipType, classStart time.Time, occupancyRate float64) (pricing.PriceBreakdown, error)
}

type RefundCalculator interface {
	CalculateRefund(paidPrice float64, classStart, cancelledAt time.Time) (refund.Result, error)
}
