package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type MemberSnapshot struct {
	ID         uuid.UUID
	Name       string
	Membership string
	CreatedAt  time.Time
}

type ClassSnapshot struct {
	ID         uuid.UUID
	Name       string
	Instructor string
	Capacity   int
	StartsAt   time.Time
	BasePrice  float64
	CreatedAt  time.Time
}

type ReservationSnapshot struct {
	ID                  uuid.UUID
	MemberID            uuid.UUID
	ClassID             uuid.UUID
	PaidPrice           float64
	MembershipFactor    float64
	PeakFactor          float64
	SurgeFactor         float64
	OccupancyRateBefore float64
	Status              string
	RefundAmount        float64
	RefundRatio         float64
	CancelledAt         *time.Time
	CreatedAt           time.Time
}

type IdempotencyRecord struct {
	Key           uuid.UUID
	Endpoint      string
	RequestHash   string
	ReservationID *uuid.UUID
	ExpiresAt     time.Time
}
