package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"fitness-booking/internal/domain/capacity"
	"fitness-booking/internal/domain/pricing"
	"fitness-booking/internal/domain/reservation"
	reqdto "fitness-booking/internal/handler/dto/request"
	"fitness-booking/internal/infra"
	"fitness-booking/internal/pkg/clock"
	"fitness-booking/internal/pkg/errs"
	"fitness-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

const (
	reserveEndpoint = "POST /api/reservations"
	idempotencyTTL  = 24 * time.Hour

	TopicReservationCreated   = "reservation.created"
	TopicReservationCancelled = "reservation.cancelled"
)

type ReservationCommands interface {
	Reserve(ctx context.Context, req reqdto.CreateReservationRequest, idempotencyKey *uuid.UUID) (*ReserveResult, error)
	Cancel(ctx context.Context, id uuid.UUID) (*CancelResult, error)
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	pricing  PriceCalculator
	refund   RefundCalculator
	clock    clock.Clock
	location *time.Location
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	pricing PriceCalculator,
	refund RefundCalculator,
	clock clock.Clock,
	location *time.Location,
) ReservationCommands {
	if location == nil {
		location = time.UTC
	}
	return &reservationCommandsImpl{
		uow:      uow,
		pricing:  pricing,
		refund:   refund,
		clock:    clock,
		location: location,
	}
}

type reservationEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	MemberID      uuid.UUID `json:"member_id"`
	ClassID       uuid.UUID `json:"class_id"`
	PaidPrice     float64   `json:"paid_price"`
	RefundAmount  float64   `json:"refund_amount,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func (u *reservationCommandsImpl) Reserve(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
	idempotencyKey *uuid.UUID,
) (*ReserveResult, error) {
	ctx, span := tracer.Start(ctx, "ReservationCommands.Reserve")
	defer span.End()
	span.SetAttributes(
		attribute.String("member.id", req.MemberID.String()),
		attribute.String("class.id", req.ClassID.String()),
		attribute.Bool("idempotency.key_present", idempotencyKey != nil),
	)

	requestHash := u.calculateRequestHash(req)

	var result *ReserveResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		now := u.clock.Now()

		if idempotencyKey != nil {
			replayed, err := u.claimIdempotencyKey(ctx, tx, *idempotencyKey, requestHash, now)
			if err != nil {
				return err
			}
			if replayed != nil {
				result = &ReserveResult{Reservation: replayed, Replayed: true}
				return nil
			}
		}

		res, err := u.admit(ctx, tx, req, now)
		if err != nil {
			return err
		}

		if idempotencyKey != nil {
			if err := tx.Idempotency().SetResult(ctx, tx.DB(), *idempotencyKey, res.ID()); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		if err := u.appendEvent(ctx, tx, TopicReservationCreated, res, now); err != nil {
			return err
		}

		result = &ReserveResult{Reservation: reservationResultFrom(res)}
		return nil
	})
	if err != nil {
		return nil, recordErr(span, err)
	}

	span.SetAttributes(
		attribute.String("reservation.id", result.Reservation.ID.String()),
		attribute.Bool("idempotency.replayed", result.Replayed),
	)
	return result, nil
}

// claimIdempotencyKey returns the stored reservation when key was already used for an identical request.
func (u *reservationCommandsImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key uuid.UUID,
	requestHash string,
	now time.Time,
) (*ReservationResult, error) {
	claimed, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, reserveEndpoint, requestHash, now, now.Add(idempotencyTTL))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if claimed {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if existing.Endpoint != reserveEndpoint || existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyKeyReused
	}
	if existing.ReservationID == nil {
		return nil, errs.ErrIdempotencyInProgress
	}

	snapshot, err := tx.Reads().ReservationByID(ctx, *existing.ReservationID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	res, err := reservationFromSnapshot(snapshot)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return reservationResultFrom(res), nil
}

// admit runs the capacity check and price calculation while the class row is locked.
func (u *reservationCommandsImpl) admit(
	ctx context.Context,
	tx shared.Tx,
	req reqdto.CreateReservationRequest,
	now time.Time,
) (*reservation.Reservation, error) {
	m, err := tx.Reads().MemberByID(ctx, req.MemberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrMemberNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	class, err := tx.Reads().ClassByIDForUpdate(ctx, req.ClassID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrClassNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	reserved, err := tx.Reads().CountActiveReservations(ctx, class.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := capacity.AssertNotExceeded(class.Capacity, reserved); err != nil {
		return nil, err
	}
	occupancy := capacity.OccupancyRate(class.Capacity, reserved)

	membership, err := pricing.ParseMembershipType(m.Membership)
	if err != nil {
		return nil, err
	}

	breakdown, err := u.pricing.Calculate(class.BasePrice, membership, class.StartsAt.In(u.location), occupancy)
	if err != nil {
		return nil, err
	}

	res := reservation.NewReservation(m.ID, class.ID, reservation.PricingFrom(breakdown, occupancy), now)
	if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return res, nil
}

func (u *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) (*CancelResult, error) {
	ctx, span := tracer.Start(ctx, "ReservationCommands.Cancel")
	defer span.End()
	span.SetAttributes(attribute.String("reservation.id", id.String()))

	var result *CancelResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		now := u.clock.Now()

		snapshot, err := tx.Reads().ReservationByIDForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrReservationNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		res, err := reservationFromSnapshot(snapshot)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if res.IsCancelled() {
			return reservation.ErrAlreadyCancelled
		}

		class, err := tx.Reads().ClassByID(ctx, res.ClassID())
		if err != nil {
			return errs.Mark(errs.Wrap(err, "class data missing for reservation"), errs.ErrDatabaseOperationFailed)
		}

		if err := res.Cancel(u.refund, class.StartsAt, now); err != nil {
			return err
		}

		if err := tx.Reservations().MarkCancelled(ctx, tx.DB(), res); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return reservation.ErrAlreadyCancelled
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := u.appendEvent(ctx, tx, TopicReservationCancelled, res, now); err != nil {
			return err
		}

		result = &CancelResult{Reservation: reservationResultFrom(res)}
		return nil
	})
	if err != nil {
		return nil, recordErr(span, err)
	}

	span.SetAttributes(attribute.Float64("reservation.refund_amount", result.Reservation.RefundAmount))
	return result, nil
}

func (u *reservationCommandsImpl) appendEvent(
	ctx context.Context,
	tx shared.Tx,
	topic string,
	res *reservation.Reservation,
	at time.Time,
) error {
	payload, err := json.Marshal(reservationEvent{
		ReservationID: res.ID(),
		MemberID:      res.MemberID(),
		ClassID:       res.ClassID(),
		PaidPrice:     res.Pricing().PaidPrice,
		RefundAmount:  res.RefundAmount(),
		OccurredAt:    at,
	})
	if err != nil {
		return errs.Wrap(err, "marshal outbox payload")
	}

	if err := tx.Outbox().Append(ctx, tx.DB(), topic, payload, at); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *reservationCommandsImpl) calculateRequestHash(req reqdto.CreateReservationRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
