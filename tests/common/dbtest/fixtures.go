//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestMember(t *testing.T, db DBLike, name, membership string) uuid.UUID {
	t.Helper()

	memberID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO members (id, name, membership) VALUES ($1, $2, $3)",
		memberID, name, membership)
	require.NoError(t, err)

	return memberID
}

func CreateTestClass(t *testing.T, db DBLike, name string, capacity int, startsAt time.Time, basePrice float64) uuid.UUID {
	t.Helper()

	classID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO classes (id, name, instructor, capacity, starts_at, base_price) VALUES ($1, $2, 'Test Instructor', $3, $4, $5)",
		classID, name, capacity, startsAt, basePrice)
	require.NoError(t, err)

	return classID
}

func CountActiveReservations(t *testing.T, db DBLike, classID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservations WHERE class_id = $1 AND status = 'confirmed'", classID).Scan(&n)
	require.NoError(t, err)

	return n
}

func CountOutboxEvents(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM outbox_events WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)

	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every application table, leaving the migration history intact
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
