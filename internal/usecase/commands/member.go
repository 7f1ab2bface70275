package commands

import (
	"context"

	reqdto "fitness-booking/internal/handler/dto/request"
	"fitness-booking/internal/pkg/clock"
	"fitness-booking/internal/pkg/errs"
	"fitness-booking/internal/usecase/shared"

	"go.opentelemetry.io/otel/attribute"
)

type MemberCommands interface {
	Register(ctx context.Context, req reqdto.RegisterMemberRequest) (*MemberResult, error)
}

type memberCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMemberCommands(uow shared.UnitOfWork, clock clock.Clock) MemberCommands {
	return &memberCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (u *memberCommandsImpl) Register(ctx context.Context, req reqdto.RegisterMemberRequest) (*MemberResult, error) {
	ctx, span := tracer.Start(ctx, "MemberCommands.Register")
	defer span.End()

	m, err := req.ToDomain(u.clock.Now())
	if err != nil {
		return nil, recordErr(span, err)
	}
	span.SetAttributes(attribute.String("member.id", m.ID().String()))

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Members().Create(ctx, tx.DB(), m)
	})
	if err != nil {
		return nil, recordErr(span, errs.Mark(err, errs.ErrDatabaseOperationFailed))
	}

	return memberResultFrom(m), nil
}
