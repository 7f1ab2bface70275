package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createClass = `-- name: CreateClass :exec
INSERT INTO classes (id, name, instructor, capacity, starts_at, base_price, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreateClassParams struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Instructor string             `json:"instructor"`
	Capacity   int32              `json:"capacity"`
	StartsAt   pgtype.Timestamptz `json:"starts_at"`
	BasePrice  float64            `json:"base_price"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateClass(ctx context.Context, db DBTX, arg CreateClassParams) error {
	_, err := db.Exec(ctx, createClass,
		arg.ID,
		arg.Name,
		arg.Instructor,
		arg.Capacity,
		arg.StartsAt,
		arg.BasePrice,
		arg.CreatedAt,
	)
	return err
}

const getClassByID = `-- name: GetClassByID :one
SELECT id, name, instructor, capacity, starts_at, base_price, created_at
FROM classes
WHERE id = $1
`

func (q *Queries) GetClassByID(ctx context.Context, db DBTX, id uuid.UUID) (Classes, error) {
	row := db.QueryRow(ctx, getClassByID, id)
	return scanClass(row)
}

const getClassByIDForUpdate = `-- name: GetClassByIDForUpdate :one
SELECT id, name, instructor, capacity, starts_at, base_price, created_at
FROM classes
WHERE id = $1
FOR UPDATE
`

// GetClassByIDForUpdate holds the class row lock until the surrounding
// transaction ends, serializing seat admission per class.
func (q *Queries) GetClassByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Classes, error) {
	row := db.QueryRow(ctx, getClassByIDForUpdate, id)
	return scanClass(row)
}

func scanClass(row interface{ Scan(dest ...any) error }) (Classes, error) {
	var i Classes
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Instructor,
		&i.Capacity,
		&i.StartsAt,
		&i.BasePrice,
		&i.CreatedAt,
	)
	return i, err
}

const getClassWithOccupancyByID = `-- name: GetClassWithOccupancyByID :one
SELECT c.id, c.name, c.instructor, c.capacity, c.starts_at, c.base_price, c.created_at,
       (SELECT count(*) FROM reservations r WHERE r.class_id = c.id AND r.status = 'confirmed') AS reserved
FROM classes c
WHERE c.id = $1
`

type ClassWithOccupancyRow struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Instructor string             `json:"instructor"`
	Capacity   int32              `json:"capacity"`
	StartsAt   pgtype.Timestamptz `json:"starts_at"`
	BasePrice  float64            `json:"base_price"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	Reserved   int64              `json:"reserved"`
}

func (q *Queries) GetClassWithOccupancyByID(ctx context.Context, db DBTX, id uuid.UUID) (ClassWithOccupancyRow, error) {
	row := db.QueryRow(ctx, getClassWithOccupancyByID, id)
	return scanClassWithOccupancy(row)
}

const listClassesFirstPage = `-- name: ListClassesFirstPage :many
SELECT c.id, c.name, c.instructor, c.capacity, c.starts_at, c.base_price, c.created_at,
       (SELECT count(*) FROM reservations r WHERE r.class_id = c.id AND r.status = 'confirmed') AS reserved
FROM classes c
ORDER BY c.starts_at, c.id
LIMIT $1
`

func (q *Queries) ListClassesFirstPage(ctx context.Context, db DBTX, limit int32) ([]ClassWithOccupancyRow, error) {
	rows, err := db.Query(ctx, listClassesFirstPage, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ClassWithOccupancyRow{}
	for rows.Next() {
		i, err := scanClassWithOccupancy(rows)
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

const listClassesKeyset = `-- name: ListClassesKeyset :many
SELECT c.id, c.name, c.instructor, c.capacity, c.starts_at, c.base_price, c.created_at,
       (SELECT count(*) FROM reservations r WHERE r.class_id = c.id AND r.status = 'confirmed') AS reserved
FROM classes c
WHERE (c.starts_at, c.id) > ($1, $2)
ORDER BY c.starts_at, c.id
LIMIT $3
`

type ListClassesKeysetParams struct {
	StartsAt pgtype.Timestamptz `json:"starts_at"`
	ID       uuid.UUID          `json:"id"`
	Limit    int32              `json:"limit"`
}

func (q *Queries) ListClassesKeyset(ctx context.Context, db DBTX, arg ListClassesKeysetParams) ([]ClassWithOccupancyRow, error) {
	rows, err := db.Query(ctx, listClassesKeyset, arg.StartsAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ClassWithOccupancyRow{}
	for rows.Next() {
		i, err := scanClassWithOccupancy(rows)
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

func scanClassWithOccupancy(row interface{ Scan(dest ...any) error }) (ClassWithOccupancyRow, error) {
	var i ClassWithOccupancyRow
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Instructor,
		&i.Capacity,
		&i.StartsAt,
		&i.BasePrice,
		&i.CreatedAt,
		&i.Reserved,
	)
	return i, err
}
