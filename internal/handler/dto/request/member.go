package request

import (
	"time"

	"fitness-booking/internal/domain/member"
	"fitness-booking/internal/domain/pricing"
)

type RegisterMemberRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	Membership string `json:"membership" binding:"required,oneof=standard student premium"`
}

func (r RegisterMemberRequest) ToDomain(now time.Time) (*member.Member, error) {
	name, err := member.NewName(r.Name)
	if err != nil {
		return nil, err
	}

	membership, err := pricing.ParseMembershipType(r.Membership)
	if err != nil {
		return nil, err
	}

	return member.NewMember(name, membership, now)
}
