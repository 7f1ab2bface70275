package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const tryInsertIdempotencyKey = `-- name: TryInsertIdempotencyKey :execrows
INSERT INTO idempotency_keys (key, endpoint, request_hash, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (key) DO UPDATE
SET endpoint = EXCLUDED.endpoint,
    request_hash = EXCLUDED.request_hash,
    reservation_id = NULL,
    expires_at = EXCLUDED.expires_at,
    created_at = EXCLUDED.created_at
WHERE idempotency_keys.expires_at <= EXCLUDED.created_at
`

type TryInsertIdempotencyKeyParams struct {
	Key         uuid.UUID          `json:"key"`
	Endpoint    string             `json:"endpoint"`
	RequestHash string             `json:"request_hash"`
	ExpiresAt   pgtype.Timestamptz `json:"expires_at"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

// TryInsertIdempotencyKey affects one row when the key is new or its previous
// claim has expired, and zero rows when a live claim already exists.
func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg TryInsertIdempotencyKeyParams) (int64, error) {
	result, err := db.Exec(ctx, tryInsertIdempotencyKey,
		arg.Key,
		arg.Endpoint,
		arg.RequestHash,
		arg.ExpiresAt,
		arg.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getIdempotencyKey = `-- name: GetIdempotencyKey :one
SELECT key, endpoint, request_hash, reservation_id, expires_at, created_at
FROM idempotency_keys
WHERE key = $1
`

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, key uuid.UUID) (IdempotencyKeys, error) {
	row := db.QueryRow(ctx, getIdempotencyKey, key)
	var i IdempotencyKeys
	err := row.Scan(
		&i.Key,
		&i.Endpoint,
		&i.RequestHash,
		&i.ReservationID,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const setIdempotencyKeyReservation = `-- name: SetIdempotencyKeyReservation :exec
UPDATE idempotency_keys
SET reservation_id = $2
WHERE key = $1
`

type SetIdempotencyKeyReservationParams struct {
	Key           uuid.UUID   `json:"key"`
	ReservationID pgtype.UUID `json:"reservation_id"`
}

func (q *Queries) SetIdempotencyKeyReservation(ctx context.Context, db DBTX, arg SetIdempotencyKeyReservationParams) error {
	_, err := db.Exec(ctx, setIdempotencyKeyReservation, arg.Key, arg.ReservationID)
	return err
}

const deleteExpiredIdempotencyKeys = `-- name: DeleteExpiredIdempotencyKeys :execrows
DELETE FROM idempotency_keys
WHERE expires_at <= $1
`

func (q *Queries) DeleteExpiredIdempotencyKeys(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, deleteExpiredIdempotencyKeys, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
