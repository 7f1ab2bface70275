package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertOutboxEvent = `-- name: InsertOutboxEvent :exec
INSERT INTO outbox_events (topic, payload, created_at)
VALUES ($1, $2, $3)
`

type InsertOutboxEventParams struct {
	Topic     string             `json:"topic"`
	Payload   []byte             `json:"payload"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) InsertOutboxEvent(ctx context.Context, db DBTX, arg InsertOutboxEventParams) error {
	_, err := db.Exec(ctx, insertOutboxEvent, arg.Topic, arg.Payload, arg.CreatedAt)
	return err
}
