//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"fitness-booking/internal/infra"
	"fitness-booking/internal/infra/query"
	"fitness-booking/internal/infra/readstore"
	readstoremock "fitness-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIdempotencyReadStore_Get(t *testing.T) {
	key := uuid.New()
	reservationID := uuid.New()
	expiresAt := time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC)

	completed := query.IdempotencyKeys{
		Key:           key,
		Endpoint:      "POST /api/reservations",
		RequestHash:   "abc123",
		ReservationID: pgtype.UUID{Bytes: reservationID, Valid: true},
		ExpiresAt:     pgtype.Timestamptz{Time: expiresAt, Valid: true},
	}
	pending := completed
	pending.ReservationID = pgtype.UUID{}

	t.Run("completed claim carries the reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockIdempotencyReadQueries(ctrl)
		mockQueries.EXPECT().GetIdempotencyKey(gomock.Any(), gomock.Any(), key).Return(completed, nil)

		record, err := readstore.NewIdempotencyReadStore(mockQueries).Get(context.Background(), nil, key)

		require.NoError(t, err)
		assert.Equal(t, key, record.Key)
		assert.Equal(t, "abc123", record.RequestHash)
		require.NotNil(t, record.ReservationID)
		assert.Equal(t, reservationID, *record.ReservationID)
		assert.True(t, expiresAt.Equal(record.ExpiresAt))
	})

	t.Run("pending claim has no reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockIdempotencyReadQueries(ctrl)
		mockQueries.EXPECT().GetIdempotencyKey(gomock.Any(), gomock.Any(), key).Return(pending, nil)

		record, err := readstore.NewIdempotencyReadStore(mockQueries).Get(context.Background(), nil, key)

		require.NoError(t, err)
		assert.Nil(t, record.ReservationID)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockIdempotencyReadQueries(ctrl)
		mockQueries.EXPECT().GetIdempotencyKey(gomock.Any(), gomock.Any(), key).Return(query.IdempotencyKeys{}, pgx.ErrNoRows)

		_, err := readstore.NewIdempotencyReadStore(mockQueries).Get(context.Background(), nil, key)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
