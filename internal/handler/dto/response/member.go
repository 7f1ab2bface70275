package response

import (
	"time"

	"fitness-booking/internal/usecase/commands"
	"fitness-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type MemberResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Membership string    `json:"membership"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromMemberView(v *queries.MemberView) MemberResponse {
	var out MemberResponse
	copyFrom(&out, v)
	return out
}

func FromMemberResult(r *commands.MemberResult) MemberResponse {
	var out MemberResponse
	copyFrom(&out, r)
	return out
}
