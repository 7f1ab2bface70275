package request

import (
	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	MemberID uuid.UUID `json:"member_id" binding:"required"`
	ClassID  uuid.UUID `json:"class_id" binding:"required"`
}

type ListQuery struct {
	Cursor string `form:"cursor"`
	Limit  *int   `form:"limit" binding:"omitempty,min=1,max=200"`
}
