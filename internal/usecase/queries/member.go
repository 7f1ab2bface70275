package queries

import (
	"context"

	"fitness-booking/internal/infra"
	"fitness-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type MemberQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*MemberView, error)
}

type MemberReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MemberView, error)
}

type memberQueriesImpl struct {
	readStore MemberReadStore
}

func NewMemberQueries(readStore MemberReadStore) MemberQueries {
	return &memberQueriesImpl{
		readStore: readStore,
	}
}

func (q *memberQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MemberView, error) {
	m, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrMemberNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return m, nil
}
