//go:build unit || e2e

package builder

import (
	"time"

	"fitness-booking/internal/domain/member"
	"fitness-booking/internal/domain/pricing"
	reqdto "fitness-booking/internal/handler/dto/request"
	"fitness-booking/internal/infra/query"
	"fitness-booking/internal/usecase/queries"
	"fitness-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MemberBuilder struct {
	ID         uuid.UUID
	Name       string
	Membership string
	CreatedAt  time.Time
}

func NewMemberBuilder() *MemberBuilder {
	return &MemberBuilder{
		ID:         uuid.New(),
		Name:       "Alice",
		Membership: "standard",
		CreatedAt:  time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *MemberBuilder) With(mutate func(*MemberBuilder)) *MemberBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *MemberBuilder) BuildDomain() (*member.Member, error) {
	name, err := member.NewName(b.Name)
	if err != nil {
		return nil, err
	}

	membership, err := pricing.ParseMembershipType(b.Membership)
	if err != nil {
		return nil, err
	}

	return member.NewMember(name, membership, b.CreatedAt)
}

func (b *MemberBuilder) BuildInfra() query.Members {
	return query.Members{
		ID:         b.ID,
		Name:       b.Name,
		Membership: b.Membership,
		CreatedAt:  pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *MemberBuilder) BuildView() *queries.MemberView {
	return &queries.MemberView{
		ID:         b.ID,
		Name:       b.Name,
		Membership: b.Membership,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *MemberBuilder) BuildSnapshot() *shared.MemberSnapshot {
	return &shared.MemberSnapshot{
		ID:         b.ID,
		Name:       b.Name,
		Membership: b.Membership,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *MemberBuilder) BuildRegisterRequestDTO() reqdto.RegisterMemberRequest {
	return reqdto.RegisterMemberRequest{
		Name:       b.Name,
		Membership: b.Membership,
	}
}

// Fluent builder methods
func (b *MemberBuilder) WithID(id uuid.UUID) *MemberBuilder {
	b.ID = id
	return b
}

func (b *MemberBuilder) WithName(name string) *MemberBuilder {
	b.Name = name
	return b
}

func (b *MemberBuilder) WithMembership(membership string) *MemberBuilder {
	b.Membership = membership
	return b
}
