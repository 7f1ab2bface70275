// Package pricing computes seat prices from a base price and three
// independent multipliers: membership tier, time of day and occupancy.
package pricing

import (
	"math"
	"time"

	"fitness-booking/internal/pkg/errs"
	"fitness-booking/internal/pkg/money"
)

var (
	ErrNegativeBasePrice     = errs.Mark(errs.New("base_price must be >= 0"), errs.ErrInvalidArgument)
	ErrOccupancyOutOfRange   = errs.Mark(errs.New("occupancy_rate must be between 0 and 1"), errs.ErrInvalidArgument)
	ErrUnsupportedMembership = errs.Mark(errs.New("membership has no pricing factor"), errs.ErrInvalidArgument)
)

// Policy is the fixed decision table. PeakStart is inclusive, PeakEnd exclusive,
// and surge applies only strictly above SurgeThreshold.
type Policy struct {
	MembershipFactors map[MembershipType]float64
	PeakStart         time.Duration
	PeakEnd           time.Duration
	PeakFactor        float64
	SurgeThreshold    float64
	SurgeFactor       float64
}

var DefaultPolicy = Policy{
	MembershipFactors: map[MembershipType]float64{
		MembershipStandard: 1.00,
		MembershipStudent:  0.85,
		MembershipPremium:  0.75,
	},
	PeakStart:      18 * time.Hour,
	PeakEnd:        22 * time.Hour,
	PeakFactor:     1.20,
	SurgeThreshold: 0.80,
	SurgeFactor:    1.30,
}

type PriceBreakdown struct {
	BasePrice        float64
	MembershipFactor float64
	PeakFactor       float64
	SurgeFactor      float64
	FinalPrice       float64
}

type Engine struct {
	policy Policy
}

func NewEngine() *Engine {
	return &Engine{policy: DefaultPolicy}
}

// Calculate is pure: the same inputs always produce the same breakdown.
// Only the wall-clock time of classStart in its own location is considered.
func (e *Engine) Calculate(basePrice float64, membership MembershipType, classStart time.Time, occupancyRate float64) (PriceBreakdown, error) {
	if basePrice < 0 || math.IsNaN(basePrice) {
		return PriceBreakdown{}, ErrNegativeBasePrice
	}
	if math.IsNaN(occupancyRate) || occupancyRate < 0.0 || occupancyRate > 1.0 {
		return PriceBreakdown{}, ErrOccupancyOutOfRange
	}

	membershipFactor, ok := e.policy.MembershipFactors[membership]
	if !ok {
		return PriceBreakdown{}, ErrUnsupportedMembership
	}

	peakFactor := 1.00
	if e.IsPeak(classStart) {
		peakFactor = e.policy.PeakFactor
	}

	surgeFactor := 1.00
	if e.IsSurge(occupancyRate) {
		surgeFactor = e.policy.SurgeFactor
	}

	final := money.Round2(basePrice * membershipFactor * peakFactor * surgeFactor)

	return PriceBreakdown{
		BasePrice:        basePrice,
		MembershipFactor: membershipFactor,
		PeakFactor:       peakFactor,
		SurgeFactor:      surgeFactor,
		FinalPrice:       final,
	}, nil
}

func (e *Engine) IsPeak(classStart time.Time) bool {
	sinceMidnight := timeOfDay(classStart)
	return sinceMidnight >= e.policy.PeakStart && sinceMidnight < e.policy.PeakEnd
}

func (e *Engine) IsSurge(occupancyRate float64) bool {
	return occupancyRate > e.policy.SurgeThreshold
}

func timeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}
