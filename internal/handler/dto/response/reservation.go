package response

import (
	"time"

	"fitness-booking/internal/usecase/commands"
	"fitness-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                  uuid.UUID  `json:"id"`
	MemberID            uuid.UUID  `json:"member_id"`
	ClassID             uuid.UUID  `json:"class_id"`
	PaidPrice           float64    `json:"paid_price"`
	MembershipFactor    float64    `json:"membership_factor"`
	PeakFactor          float64    `json:"peak_factor"`
	SurgeFactor         float64    `json:"surge_factor"`
	OccupancyRateBefore float64    `json:"occupancy_rate_before"`
	Status              string     `json:"status"`
	IsCancelled         bool       `json:"is_cancelled"`
	CancelledAt         *time.Time `json:"cancelled_at"`
	RefundAmount        float64    `json:"refund_amount"`
	RefundRatio         float64    `json:"refund_ratio"`
	CreatedAt           time.Time  `json:"created_at"`
}

type ReservationListResponse struct {
	Items      []ReservationResponse `json:"items"`
	NextCursor *string               `json:"next_cursor"`
}

func FromReservationView(v *queries.ReservationView) ReservationResponse {
	var out ReservationResponse
	copyFrom(&out, v)
	out.IsCancelled = v.CancelledAt != nil
	return out
}

func FromReservationResult(r *commands.ReservationResult) ReservationResponse {
	var out ReservationResponse
	copyFrom(&out, r)
	out.IsCancelled = r.CancelledAt != nil
	return out
}

func FromReservationViews(views []*queries.ReservationView, next *queries.Cursor) ReservationListResponse {
	items := make([]ReservationResponse, len(views))
	for i, v := range views {
		items[i] = FromReservationView(v)
	}
	return ReservationListResponse{Items: items, NextCursor: cursorString(next)}
}
