// Package refund decides how much of a paid price is returned on cancellation.
package refund

import (
	"math"
	"time"

	"fitness-booking/internal/pkg/errs"
	"fitness-booking/internal/pkg/money"
)

var ErrNegativePaidPrice = errs.Mark(errs.New("paid_price must be >= 0"), errs.ErrInvalidArgument)

// Tier grants Ratio when the cancellation lead time is at least MinLead.
type Tier struct {
	MinLead time.Duration
	Ratio   float64
}

// Tiers are ordered by descending MinLead.
var DefaultTiers = []Tier{
	{MinLead: 24 * time.Hour, Ratio: 0.90},
	{MinLead: 2 * time.Hour, Ratio: 0.50},
}

type Result struct {
	Amount float64
	Ratio  float64
}

type Policy struct {
	tiers []Tier
}

func NewPolicy() *Policy {
	return &Policy{tiers: DefaultTiers}
}

// CalculateRefund returns a zero refund for cancellations after the class started.
func (p *Policy) CalculateRefund(paidPrice float64, classStart, cancelledAt time.Time) (Result, error) {
	if paidPrice < 0 || math.IsNaN(paidPrice) {
		return Result{}, ErrNegativePaidPrice
	}
	if cancelledAt.After(classStart) {
		return Result{Amount: 0, Ratio: 0}, nil
	}

	ratio := p.RatioFor(classStart.Sub(cancelledAt))
	amount := money.Round2(paidPrice * ratio)
	if amount > paidPrice {
		amount = paidPrice
	}
	return Result{Amount: amount, Ratio: ratio}, nil
}

func (p *Policy) RatioFor(lead time.Duration) float64 {
	for _, tier := range p.tiers {
		if lead >= tier.MinLead {
			return tier.Ratio
		}
	}
	return 0
}
