//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"fitness-booking/internal/domain/refund"
	"fitness-booking/internal/domain/reservation"
	"fitness-booking/internal/infra"
	"fitness-booking/internal/infra/query"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationWriteQueries struct {
	mock.Mock
}

func (m *MockReservationWriteQueries) CreateReservation(ctx context.Context, db query.DBTX, arg query.CreateReservationParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockReservationWriteQueries) CancelReservation(ctx context.Context, db query.DBTX, arg query.CancelReservationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func newConfirmedReservation() *reservation.Reservation {
	return reservation.NewReservation(uuid.New(), uuid.New(), reservation.Pricing{
		PaidPrice:           120,
		MembershipFactor:    1.0,
		PeakFactor:          1.2,
		SurgeFactor:         1.0,
		OccupancyRateBefore: 0.5,
	}, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
}

func TestReservationRepository_Create(t *testing.T) {
	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "foreign key violation", mockError: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newConfirmedReservation()
			mockQueries := new(MockReservationWriteQueries)
			mockQueries.On("CreateReservation", mock.Anything, mock.Anything, mock.MatchedBy(func(p query.CreateReservationParams) bool {
				return p.ID == res.ID() &&
					p.MemberID == res.MemberID() &&
					p.ClassID == res.ClassID() &&
					p.PaidPrice == 120 &&
					p.PeakFactor == 1.2 &&
					p.Status == "confirmed" &&
					p.CreatedAt.Valid
			})).Return(tt.mockError)

			repo := NewReservationRepository(mockQueries, nil)
			err := repo.Create(context.Background(), nil, res)

			if tt.mockError == nil {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestReservationRepository_MarkCancelled(t *testing.T) {
	classStart := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)
	cancelledAt := classStart.Add(-48 * time.Hour)

	t.Run("success", func(t *testing.T) {
		res := newConfirmedReservation()
		require.NoError(t, res.Cancel(refund.NewPolicy(), classStart, cancelledAt))

		mockQueries := new(MockReservationWriteQueries)
		mockQueries.On("CancelReservation", mock.Anything, mock.Anything, mock.MatchedBy(func(p query.CancelReservationParams) bool {
			return p.ID == res.ID() && p.RefundAmount == 108 && p.RefundRatio == 0.9 && p.CancelledAt.Time.Equal(cancelledAt)
		})).Return(int64(1), nil)

		repo := NewReservationRepository(mockQueries, nil)
		assert.NoError(t, repo.MarkCancelled(context.Background(), nil, res))
		mockQueries.AssertExpectations(t)
	})

	t.Run("row already cancelled", func(t *testing.T) {
		res := newConfirmedReservation()
		require.NoError(t, res.Cancel(refund.NewPolicy(), classStart, cancelledAt))

		mockQueries := new(MockReservationWriteQueries)
		mockQueries.On("CancelReservation", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

		repo := NewReservationRepository(mockQueries, nil)
		err := repo.MarkCancelled(context.Background(), nil, res)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("confirmed reservation is rejected without a query", func(t *testing.T) {
		mockQueries := new(MockReservationWriteQueries)

		repo := NewReservationRepository(mockQueries, nil)
		err := repo.MarkCancelled(context.Background(), nil, newConfirmedReservation())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		mockQueries.AssertNotCalled(t, "CancelReservation", mock.Anything, mock.Anything, mock.Anything)
	})
}
