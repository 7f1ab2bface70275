package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createMember = `-- name: CreateMember :exec
INSERT INTO members (id, name, membership, created_at)
VALUES ($1, $2, $3, $4)
`

type CreateMemberParams struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Membership string             `json:"membership"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateMember(ctx context.Context, db DBTX, arg CreateMemberParams) error {
	_, err := db.Exec(ctx, createMember,
		arg.ID,
		arg.Name,
		arg.Membership,
		arg.CreatedAt,
	)
	return err
}

const getMemberByID = `-- name: GetMemberByID :one
SELECT id, name, membership, created_at
FROM members
WHERE id = $1
`

func (q *Queries) GetMemberByID(ctx context.Context, db DBTX, id uuid.UUID) (Members, error) {
	row := db.QueryRow(ctx, getMemberByID, id)
	var i Members
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Membership,
		&i.CreatedAt,
	)
	return i, err
}
