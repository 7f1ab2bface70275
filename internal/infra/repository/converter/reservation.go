package converter

import (
	"fitness-booking/internal/domain/fitnessclass"
	"fitness-booking/internal/domain/member"
	"fitness-booking/internal/domain/reservation"
	"fitness-booking/internal/infra/query"
	"fitness-booking/internal/pkg/pgconv"
)

func MemberToInfra(m *member.Member) query.CreateMemberParams {
	return query.CreateMemberParams{
		ID:         m.ID(),
		Name:       m.Name().Value(),
		Membership: m.Membership().String(),
		CreatedAt:  pgconv.TimeToPgtype(m.CreatedAt()),
	}
}

func ClassToInfra(c *fitnessclass.FitnessClass) query.CreateClassParams {
	return query.CreateClassParams{
		ID:         c.ID(),
		Name:       c.Name().Value(),
		Instructor: c.Instructor().Value(),
		Capacity:   int32(c.Capacity().Value()), // #nosec G115 -- capacity is bounded to 1..200
		StartsAt:   pgconv.TimeToPgtype(c.StartsAt()),
		BasePrice:  c.BasePrice().Value(),
		CreatedAt:  pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func ReservationToInfra(res *reservation.Reservation) query.CreateReservationParams {
	p := res.Pricing()
	return query.CreateReservationParams{
		ID:                  res.ID(),
		MemberID:            res.MemberID(),
		ClassID:             res.ClassID(),
		PaidPrice:           p.PaidPrice,
		MembershipFactor:    p.MembershipFactor,
		PeakFactor:          p.PeakFactor,
		SurgeFactor:         p.SurgeFactor,
		OccupancyRateBefore: p.OccupancyRateBefore,
		Status:              res.Status().String(),
		CreatedAt:           pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

// CancellationToInfra expects a cancelled reservation.
func CancellationToInfra(res *reservation.Reservation) query.CancelReservationParams {
	c := res.Cancellation()
	return query.CancelReservationParams{
		ID:           res.ID(),
		RefundAmount: c.RefundAmount,
		RefundRatio:  c.RefundRatio,
		CancelledAt:  pgconv.TimeToPgtype(c.CancelledAt),
	}
}
