package response

import (
	"time"

	"fitness-booking/internal/usecase/commands"
	"fitness-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClassResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Instructor string    `json:"instructor"`
	Capacity   int       `json:"capacity"`
	Reserved   int       `json:"reserved"`
	Available  int       `json:"available"`
	StartsAt   time.Time `json:"starts_at"`
	BasePrice  float64   `json:"base_price"`
	CreatedAt  time.Time `json:"created_at"`
}

type ClassListResponse struct {
	Items      []ClassResponse `json:"items"`
	NextCursor *string         `json:"next_cursor"`
}

type QuoteResponse struct {
	ClassID          uuid.UUID `json:"class_id"`
	MemberID         uuid.UUID `json:"member_id"`
	Membership       string    `json:"membership"`
	BasePrice        float64   `json:"base_price"`
	MembershipFactor float64   `json:"membership_factor"`
	PeakFactor       float64   `json:"peak_factor"`
	SurgeFactor      float64   `json:"surge_factor"`
	OccupancyRate    float64   `json:"occupancy_rate"`
	FinalPrice       float64   `json:"final_price"`
}

func FromClassView(v *queries.ClassView) ClassResponse {
	var out ClassResponse
	copyFrom(&out, v)
	out.Available = v.Available()
	return out
}

// A freshly scheduled class has every seat available
func FromClassResult(r *commands.ClassResult) ClassResponse {
	var out ClassResponse
	copyFrom(&out, r)
	out.Available = r.Capacity
	return out
}

func FromClassViews(views []*queries.ClassView, next *queries.Cursor) ClassListResponse {
	items := make([]ClassResponse, len(views))
	for i, v := range views {
		items[i] = FromClassView(v)
	}
	return ClassListResponse{Items: items, NextCursor: cursorString(next)}
}

func FromQuoteView(v *queries.QuoteView) QuoteResponse {
	var out QuoteResponse
	copyFrom(&out, v)
	return out
}

func cursorString(c *queries.Cursor) *string {
	if c == nil || c.IsEmpty() {
		return nil
	}
	s := c.After
	return &s
}
