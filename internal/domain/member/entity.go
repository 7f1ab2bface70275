package member

import (
	"time"

	"fitness-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

type Member struct {
	id         uuid.UUID
	name       Name
	membership pricing.MembershipType
	createdAt  time.Time
}

func NewMember(name Name, membership pricing.MembershipType, now time.Time) (*Member, error) {
	if !membership.IsValid() {
		return nil, pricing.ErrInvalidMembership
	}
	return &Member{
		id:         uuid.New(),
		name:       name,
		membership: membership,
		createdAt:  now,
	}, nil
}

func ReconstructMember(id uuid.UUID, name Name, membership pricing.MembershipType, createdAt time.Time) *Member {
	return &Member{
		id:         id,
		name:       name,
		membership: membership,
		createdAt:  createdAt,
	}
}

func (m *Member) ID() uuid.UUID                      { return m.id }
func (m *Member) Name() Name                         { return m.name }
func (m *Member) Membership() pricing.MembershipType { return m.membership }
func (m *Member) CreatedAt() time.Time               { return m.createdAt }
