package shared

import (
	"context"
	"time"

	"fitness-booking/internal/domain/fitnessclass"
	"fitness-booking/internal/domain/member"
	"fitness-booking/internal/domain/reservation"
	"fitness-booking/internal/infra/query"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Members() MemberRepository
	Classes() ClassRepository
	Reservations() ReservationRepository
	Idempotency() IdempotencyRepository
	Outbox() OutboxRepository
	Reads() CommandReads
	DB() query.DBTX
}

type CommandReads interface {
	MemberByID(ctx context.Context, id uuid.UUID) (*MemberSnapshot, error)
	ClassByID(ctx context.Context, id uuid.UUID) (*ClassSnapshot, error)
	// ClassByIDForUpdate locks the class row for the rest of the transaction
	ClassByIDForUpdate(ctx context.Context, id uuid.UUID) (*ClassSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	ReservationByIDForUpdate(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	CountActiveReservations(ctx context.Context, classID uuid.UUID) (int, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
}

type MemberRepository interface {
	Create(ctx context.Context, tx query.DBTX, m *member.Member) error
}

type ClassRepository interface {
	Create(ctx context.Context, tx query.DBTX, c *fitnessclass.FitnessClass) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx query.DBTX, res *reservation.Reservation) error
	MarkCancelled(ctx context.Context, tx query.DBTX, res *reservation.Reservation) error
}

type IdempotencyRepository interface {
	// TryInsert reports false when a live claim for key already exists
	TryInsert(ctx context.Context, tx query.DBTX, key uuid.UUID, endpoint, requestHash string, now, expiresAt time.Time) (bool, error)
	SetResult(ctx context.Context, tx query.DBTX, key, reservationID uuid.UUID) error
}

type OutboxRepository interface {
	Append(ctx context.Context, tx query.DBTX, topic string, payload []byte, at time.Time) error
}
