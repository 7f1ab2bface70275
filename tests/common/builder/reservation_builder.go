//go:build unit || e2e

package builder

import (
	"time"

	"fitness-booking/internal/domain/reservation"
	reqdto "fitness-booking/internal/handler/dto/request"
	"fitness-booking/internal/infra/query"
	"fitness-booking/internal/usecase/queries"
	"fitness-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
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

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:                  uuid.New(),
		MemberID:            uuid.New(),
		ClassID:             uuid.New(),
		PaidPrice:           100,
		MembershipFactor:    1.0,
		PeakFactor:          1.0,
		SurgeFactor:         1.0,
		OccupancyRateBefore: 0,
		Status:              "confirmed",
		CreatedAt:           time.Date(2025, 1, 12, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) pricing() reservation.Pricing {
	return reservation.Pricing{
		PaidPrice:           b.PaidPrice,
		MembershipFactor:    b.MembershipFactor,
		PeakFactor:          b.PeakFactor,
		SurgeFactor:         b.SurgeFactor,
		OccupancyRateBefore: b.OccupancyRateBefore,
	}
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	status, err := reservation.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}

	var cancellation *reservation.Cancellation
	if b.CancelledAt != nil {
		cancellation = &reservation.Cancellation{
			CancelledAt:  *b.CancelledAt,
			RefundAmount: b.RefundAmount,
			RefundRatio:  b.RefundRatio,
		}
	}

	return reservation.ReconstructReservation(b.ID, b.MemberID, b.ClassID, b.pricing(), status, cancellation, b.CreatedAt), nil
}

func (b *ReservationBuilder) BuildInfra() query.Reservations {
	cancelledAt := pgtype.Timestamptz{}
	if b.CancelledAt != nil {
		cancelledAt = pgtype.Timestamptz{Time: *b.CancelledAt, Valid: true}
	}

	return query.Reservations{
		ID:                  b.ID,
		MemberID:            b.MemberID,
		ClassID:             b.ClassID,
		PaidPrice:           b.PaidPrice,
		MembershipFactor:    b.MembershipFactor,
		PeakFactor:          b.PeakFactor,
		SurgeFactor:         b.SurgeFactor,
		OccupancyRateBefore: b.OccupancyRateBefore,
		Status:              b.Status,
		RefundAmount:        b.RefundAmount,
		RefundRatio:         b.RefundRatio,
		CancelledAt:         cancelledAt,
		CreatedAt:           pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:                  b.ID,
		MemberID:            b.MemberID,
		ClassID:             b.ClassID,
		PaidPrice:           b.PaidPrice,
		MembershipFactor:    b.MembershipFactor,
		PeakFactor:          b.PeakFactor,
		SurgeFactor:         b.SurgeFactor,
		OccupancyRateBefore: b.OccupancyRateBefore,
		Status:              b.Status,
		RefundAmount:        b.RefundAmount,
		RefundRatio:         b.RefundRatio,
		CancelledAt:         b.CancelledAt,
		CreatedAt:           b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:                  b.ID,
		MemberID:            b.MemberID,
		ClassID:             b.ClassID,
		PaidPrice:           b.PaidPrice,
		MembershipFactor:    b.MembershipFactor,
		PeakFactor:          b.PeakFactor,
		SurgeFactor:         b.SurgeFactor,
		OccupancyRateBefore: b.OccupancyRateBefore,
		Status:              b.Status,
		RefundAmount:        b.RefundAmount,
		RefundRatio:         b.RefundRatio,
		CancelledAt:         b.CancelledAt,
		CreatedAt:           b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		MemberID: b.MemberID,
		ClassID:  b.ClassID,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithMemberID(id uuid.UUID) *ReservationBuilder {
	b.MemberID = id
	return b
}

func (b *ReservationBuilder) WithClassID(id uuid.UUID) *ReservationBuilder {
	b.ClassID = id
	return b
}

func (b *ReservationBuilder) WithPaidPrice(price float64) *ReservationBuilder {
	b.PaidPrice = price
	return b
}

func (b *ReservationBuilder) AsCancelled(at time.Time, refundAmount, refundRatio float64) *ReservationBuilder {
	b.Status = "cancelled"
	b.CancelledAt = &at
	b.RefundAmount = refundAmount
	b.RefundRatio = refundRatio
	return b
}
