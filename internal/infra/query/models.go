package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Members struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Membership string             `json:"membership"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

type Classes struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Instructor string             `json:"instructor"`
	Capacity   int32              `json:"capacity"`
	StartsAt   pgtype.Timestamptz `json:"starts_at"`
	BasePrice  float64            `json:"base_price"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

type Reservations struct {
	ID                  uuid.UUID          `json:"id"`
	MemberID            uuid.UUID          `json:"member_id"`
	ClassID             uuid.UUID          `json:"class_id"`
	PaidPrice           float64            `json:"paid_price"`
	MembershipFactor    float64            `json:"membership_factor"`
	PeakFactor          float64            `json:"peak_factor"`
	SurgeFactor         float64            `json:"surge_factor"`
	OccupancyRateBefore float64            `json:"occupancy_rate_before"`
	Status              string             `json:"status"`
	RefundAmount        float64            `json:"refund_amount"`
	RefundRatio         float64            `json:"refund_ratio"`
	CancelledAt         pgtype.Timestamptz `json:"cancelled_at"`
	CreatedAt           pgtype.Timestamptz `json:"created_at"`
}

type IdempotencyKeys struct {
	Key           uuid.UUID          `json:"key"`
	Endpoint      string             `json:"endpoint"`
	RequestHash   string             `json:"request_hash"`
	ReservationID pgtype.UUID        `json:"reservation_id"`
	ExpiresAt     pgtype.Timestamptz `json:"expires_at"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

type OutboxEvents struct {
	ID          uuid.UUID          `json:"id"`
	Topic       string             `json:"topic"`
	Payload     []byte             `json:"payload"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	PublishedAt pgtype.Timestamptz `json:"published_at"`
}
