package commands

import (
	"time"

	"fitness-booking/internal/domain/fitnessclass"
	"fitness-booking/internal/domain/member"
	"fitness-booking/internal/domain/reservation"
	"fitness-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type MemberResult struct {
	ID         uuid.UUID
	Name       string
	Membership string
	CreatedAt  time.Time
}

func memberResultFrom(m *member.Member) *MemberResult {
	return &MemberResult{
		ID:         m.ID(),
		Name:       m.Name().Value(),
		Membership: m.Membership().String(),
		CreatedAt:  m.CreatedAt(),
	}
}

type ClassResult struct {
	ID         uuid.UUID
	Name       string
	Instructor string
	Capacity   int
	StartsAt   time.Time
	BasePrice  float64
	CreatedAt  time.Time
}

func classResultFrom(c *fitnessclass.FitnessClass) *ClassResult {
	return &ClassResult{
		ID:         c.ID(),
		Name:       c.Name().Value(),
		Instructor: c.Instructor().Value(),
		Capacity:   c.Capacity().Value(),
		StartsAt:   c.StartsAt(),
		BasePrice:  c.BasePrice().Value(),
		CreatedAt:  c.CreatedAt(),
	}
}

type ReservationResult struct {
	ID                  uuid.UUID
	MemberID            uuid.UUID
	ClassID             uuid.UUID
	PaidPrice           float64
	MembershipFactor    float64
	PeakFactor          float64
	SurgeFactor         float64
	OccupancyRateBefore float64
	Status              string
	RefundAmount        float64
	RefundRatio         float64
	CancelledAt         *time.Time
	CreatedAt           time.Time
}

type ReserveResult struct {
	Reservation *ReservationResult
	Replayed    bool
}

type CancelResult struct {
	Reservation *ReservationResult
}

func reservationResultFrom(res *reservation.Reservation) *ReservationResult {
	p := res.Pricing()
	out := &ReservationResult{
		ID:                  res.ID(),
		MemberID:            res.MemberID(),
		ClassID:             res.ClassID(),
		PaidPrice:           p.PaidPrice,
		MembershipFactor:    p.MembershipFactor,
		PeakFactor:          p.PeakFactor,
		SurgeFactor:         p.SurgeFactor,
		OccupancyRateBefore: p.OccupancyRateBefore,
		Status:              res.Status().String(),
		CreatedAt:           res.CreatedAt(),
	}
	if c := res.Cancellation(); c != nil {
		cancelledAt := c.CancelledAt
		out.CancelledAt = &cancelledAt
		out.RefundAmount = c.RefundAmount
		out.RefundRatio = c.RefundRatio
	}
	return out
}

func reservationFromSnapshot(s *shared.ReservationSnapshot) (*reservation.Reservation, error) {
	status, err := reservation.NewStatus(s.Status)
	if err != nil {
		return nil, err
	}

	var cancellation *reservation.Cancellation
	if s.CancelledAt != nil {
		cancellation = &reservation.Cancellation{
			CancelledAt:  *s.CancelledAt,
			RefundAmount: s.RefundAmount,
			RefundRatio:  s.RefundRatio,
		}
	}

	return reservation.ReconstructReservation(
		s.ID, s.MemberID, s.ClassID,
		reservation.Pricing{
			PaidPrice:           s.PaidPrice,
			MembershipFactor:    s.MembershipFactor,
			PeakFactor:          s.PeakFactor,
			SurgeFactor:         s.SurgeFactor,
			OccupancyRateBefore: s.OccupancyRateBefore,
		},
		status,
		cancellation,
		s.CreatedAt,
	), nil
}
