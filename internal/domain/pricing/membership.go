package pricing

import (
	"strings"

	"fitness-booking/internal/pkg/errs"
)

var ErrInvalidMembership = errs.Mark(errs.New("membership must be one of standard, student, premium"), errs.ErrInvalidArgument)

type MembershipType string

const (
	MembershipStandard MembershipType = "standard"
	MembershipStudent  MembershipType = "student"
	MembershipPremium  MembershipType = "premium"
)

func ParseMembershipType(s string) (MembershipType, error) {
	m := MembershipType(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", ErrInvalidMembership
	}
	return m, nil
}

func (m MembershipType) String() string {
	return string(m)
}

func (m MembershipType) IsValid() bool {
	switch m {
	case MembershipStandard, MembershipStudent, MembershipPremium:
		return true
	default:
		return false
	}
}
