package reservation

import (
	"time"

	"fitness-booking/internal/domain/refund"
	"fitness-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errs.Mark(errs.New("reservation is already cancelled"), errs.ErrReservationAlreadyCancelled)
	ErrInvalidStatus    = errs.Mark(errs.New("invalid reservation status"), errs.ErrInvalidArgument)
)

type RefundCalculator interface {
	CalculateRefund(paidPrice float64, classStart, cancelledAt time.Time) (refund.Result, error)
}

type Reservation struct {
	id           uuid.UUID
	memberID     uuid.UUID
	classID      uuid.UUID
	pricing      Pricing
	status       Status
	cancellation *Cancellation
	createdAt    time.Time
}

func NewReservation(memberID, classID uuid.UUID, p Pricing, now time.Time) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		memberID:  memberID,
		classID:   classID,
		pricing:   p,
		status:    StatusConfirmed,
		createdAt: now,
	}
}

func ReconstructReservation(
	id, memberID, classID uuid.UUID,
	p Pricing,
	status Status,
	cancellation *Cancellation,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		memberID:     memberID,
		classID:      classID,
		pricing:      p,
		status:       status,
		cancellation: cancellation,
		createdAt:    createdAt,
	}
}

// Cancel applies the refund policy against classStart and moves the reservation to cancelled.
func (r *Reservation) Cancel(policy RefundCalculator, classStart, now time.Time) error {
	if r.IsCancelled() {
		return ErrAlreadyCancelled
	}
	res, err := policy.CalculateRefund(r.pricing.PaidPrice, classStart, now)
	if err != nil {
		return err
	}
	r.status = StatusCancelled
	r.cancellation = &Cancellation{
		CancelledAt:  now,
		RefundAmount: res.Amount,
		RefundRatio:  res.Ratio,
	}
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) RefundAmount() float64 {
	if r.cancellation == nil {
		return 0
	}
	return r.cancellation.RefundAmount
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) MemberID() uuid.UUID         { return r.memberID }
func (r *Reservation) ClassID() uuid.UUID          { return r.classID }
func (r *Reservation) Pricing() Pricing            { return r.pricing }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) Cancellation() *Cancellation { return r.cancellation }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }
