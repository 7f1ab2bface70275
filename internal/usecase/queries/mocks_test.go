//go:build unit

package queries_test

import (
	"context"
	"time"

	"fitness-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockMemberReadStore struct {
	mock.Mock
}

func (m *MockMemberReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MemberView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.MemberView), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockClassReadStore struct {
	mock.Mock
}

func (m *MockClassReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClassView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.ClassView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClassReadStore) FindFirstPage(ctx context.Context, limit int32) ([]*queries.ClassView, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*queries.ClassView), args.Error(1)
}

func (m *MockClassReadStore) FindKeyset(ctx context.Context, lastStartsAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ClassView, error) {
	args := m.Called(ctx, lastStartsAt, lastID, limit)
	return args.Get(0).([]*queries.ClassView), args.Error(1)
}

type MockReservationReadStore struct {
	mock.Mock
}

func (m *MockReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.ReservationView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReservationReadStore) FindByMemberFirstPage(ctx context.Context, memberID uuid.UUID, limit int32) ([]*queries.ReservationView, error) {
	args := m.Called(ctx, memberID, limit)
	return args.Get(0).([]*queries.ReservationView), args.Error(1)
}

func (m *MockReservationReadStore) FindByMemberKeyset(ctx context.Context, memberID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationView, error) {
	args := m.Called(ctx, memberID, lastCreatedAt, lastID, limit)
	return args.Get(0).([]*queries.ReservationView), args.Error(1)
}
