package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, member_id, class_id, paid_price, membership_factor, peak_factor, surge_factor,
       occupancy_rate_before, status, refund_amount, refund_ratio, cancelled_at, created_at`

const createReservation = `-- name: CreateReservation :exec
INSERT INTO reservations (
    id, member_id, class_id, paid_price, membership_factor, peak_factor, surge_factor,
    occupancy_rate_before, status, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

type CreateReservationParams struct {
	ID                  uuid.UUID          `json:"id"`
	MemberID            uuid.UUID          `json:"member_id"`
	ClassID             uuid.UUID          `json:"class_id"`
	PaidPrice           float64            `json:"paid_price"`
	MembershipFactor    float64            `json:"membership_factor"`
	PeakFactor          float64            `json:"peak_factor"`
	SurgeFactor         float64            `json:"surge_factor"`
	OccupancyRateBefore float64            `json:"occupancy_rate_before"`
	Status              string             `json:"status"`
	CreatedAt           pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ID,
		arg.MemberID,
		arg.ClassID,
		arg.PaidPrice,
		arg.MembershipFactor,
		arg.PeakFactor,
		arg.SurgeFactor,
		arg.OccupancyRateBefore,
		arg.Status,
		arg.CreatedAt,
	)
	return err
}

const cancelReservation = `-- name: CancelReservation :execrows
UPDATE reservations
SET status = 'cancelled',
    refund_amount = $2,
    refund_ratio = $3,
    cancelled_at = $4
WHERE id = $1 AND status = 'confirmed'
`

type CancelReservationParams struct {
	ID           uuid.UUID          `json:"id"`
	RefundAmount float64            `json:"refund_amount"`
	RefundRatio  float64            `json:"refund_ratio"`
	CancelledAt  pgtype.Timestamptz `json:"cancelled_at"`
}

func (q *Queries) CancelReservation(ctx context.Context, db DBTX, arg CancelReservationParams) (int64, error) {
	result, err := db.Exec(ctx, cancelReservation,
		arg.ID,
		arg.RefundAmount,
		arg.RefundRatio,
		arg.CancelledAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getReservationByID = `-- name: GetReservationByID :one
SELECT ` + reservationColumns + `
FROM reservations
WHERE id = $1
`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	row := db.QueryRow(ctx, getReservationByID, id)
	return scanReservation(row)
}

const getReservationByIDForUpdate = `-- name: GetReservationByIDForUpdate :one
SELECT ` + reservationColumns + `
FROM reservations
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetReservationByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	row := db.QueryRow(ctx, getReservationByIDForUpdate, id)
	return scanReservation(row)
}

const countActiveReservationsByClass = `-- name: CountActiveReservationsByClass :one
SELECT count(*)
FROM reservations
WHERE class_id = $1 AND status = 'confirmed'
`

func (q *Queries) CountActiveReservationsByClass(ctx context.Context, db DBTX, classID uuid.UUID) (int64, error) {
	row := db.QueryRow(ctx, countActiveReservationsByClass, classID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listReservationsByMemberFirstPage = `-- name: ListReservationsByMemberFirstPage :many
SELECT ` + reservationColumns + `
FROM reservations
WHERE member_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2
`

type ListReservationsByMemberFirstPageParams struct {
	MemberID uuid.UUID `json:"member_id"`
	Limit    int32     `json:"limit"`
}

func (q *Queries) ListReservationsByMemberFirstPage(ctx context.Context, db DBTX, arg ListReservationsByMemberFirstPageParams) ([]Reservations, error) {
	rows, err := db.Query(ctx, listReservationsByMemberFirstPage, arg.MemberID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectReservations(rows)
}

const listReservationsByMemberKeyset = `-- name: ListReservationsByMemberKeyset :many
SELECT ` + reservationColumns + `
FROM reservations
WHERE member_id = $1
  AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4
`

type ListReservationsByMemberKeysetParams struct {
	MemberID  uuid.UUID          `json:"member_id"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	ID        uuid.UUID          `json:"id"`
	Limit     int32              `json:"limit"`
}

func (q *Queries) ListReservationsByMemberKeyset(ctx context.Context, db DBTX, arg ListReservationsByMemberKeysetParams) ([]Reservations, error) {
	rows, err := db.Query(ctx, listReservationsByMemberKeyset, arg.MemberID, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectReservations(rows)
}

func collectReservations(rows pgx.Rows) ([]Reservations, error) {
	defer rows.Close()
	items := []Reservations{}
	for rows.Next() {
		i, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanReservation(row interface{ Scan(dest ...any) error }) (Reservations, error) {
	var i Reservations
	err := row.Scan(
		&i.ID,
		&i.MemberID,
		&i.ClassID,
		&i.PaidPrice,
		&i.MembershipFactor,
		&i.PeakFactor,
		&i.SurgeFactor,
		&i.OccupancyRateBefore,
		&i.Status,
		&i.RefundAmount,
		&i.RefundRatio,
		&i.CancelledAt,
		&i.CreatedAt,
	)
	return i, err
}
