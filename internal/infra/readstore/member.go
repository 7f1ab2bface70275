package readstore

import (
	"context"

	"fitness-booking/internal/infra"
	"fitness-booking/internal/infra/query"
	"fitness-booking/internal/pkg/pgconv"
	"fitness-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type MemberReadQueries interface {
	GetMemberByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Members, error)
}

type MemberReadStore struct {
	queries MemberReadQueries
	db      query.DBTX
}

func NewMemberReadStore(queries MemberReadQueries, db query.DBTX) *MemberReadStore {
	return &MemberReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MemberReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MemberView, error) {
	row, err := r.queries.GetMemberByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find member by ID", err)
	}

	return &queries.MemberView{
		ID:         row.ID,
		Name:       row.Name,
		Membership: row.Membership,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
