package repository

import (
	"context"

	"fitness-booking/internal/domain/member"
	"fitness-booking/internal/infra"
	"fitness-booking/internal/infra/query"
	"fitness-booking/internal/infra/repository/converter"
)

type MemberWriteQueries interface {
	CreateMember(ctx context.Context, db query.DBTX, arg query.CreateMemberParams) error
}

type MemberRepository struct {
	queries MemberWriteQueries
	db      query.DBTX
}

func NewMemberRepository(queries MemberWriteQueries, db query.DBTX) *MemberRepository {
	return &MemberRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MemberRepository) Create(ctx context.Context, tx query.DBTX, m *member.Member) error {
	if err := r.queries.CreateMember(ctx, tx, converter.MemberToInfra(m)); err != nil {
		return infra.WrapRepoErr("failed to create member", err)
	}
	return nil
}
