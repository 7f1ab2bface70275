package commands

import (
	"context"

	reqdto "fitness-booking/internal/handler/dto/request"
	"fitness-booking/internal/pkg/clock"
	"fitness-booking/internal/pkg/errs"
	"fitness-booking/internal/usecase/shared"

	"go.opentelemetry.io/otel/attribute"
)

type ClassCommands interface {
	Schedule(ctx context.Context, req reqdto.ScheduleClassRequest) (*ClassResult, error)
}

type classCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewClassCommands(uow shared.UnitOfWork, clock clock.Clock) ClassCommands {
	return &classCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (u *classCommandsImpl) Schedule(ctx context.Context, req reqdto.ScheduleClassRequest) (*ClassResult, error) {
	ctx, span := tracer.Start(ctx, "ClassCommands.Schedule")
	defer span.End()

	c, err := req.ToDomain(u.clock.Now())
	if err != nil {
		return nil, recordErr(span, err)
	}
	span.SetAttributes(
		attribute.String("class.id", c.ID().String()),
		attribute.Int("class.capacity", c.Capacity().Value()),
	)

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Classes().Create(ctx, tx.DB(), c)
	})
	if err != nil {
		return nil, recordErr(span, errs.Mark(err, errs.ErrDatabaseOperationFailed))
	}

	return classResultFrom(c), nil
}
