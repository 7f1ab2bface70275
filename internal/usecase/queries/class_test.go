//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"fitness-booking/internal/domain/capacity"
	"fitness-booking/internal/domain/pricing"
	"fitness-booking/internal/infra"
	"fitness-booking/internal/pkg/errs"
	"fitness-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func classView(capacity, reserved int, startsAt time.Time) *queries.ClassView {
	return &queries.ClassView{
		ID:         uuid.New(),
		Name:       "Evening HIIT",
		Instructor: "Aoi",
		Capacity:   capacity,
		Reserved:   reserved,
		StartsAt:   startsAt,
		BasePrice:  100,
	}
}

func TestClassQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		view := classView(10, 3, time.Now())
		classes := new(MockClassReadStore)
		classes.On("FindByID", mock.Anything, view.ID).Return(view, nil)

		q := queries.NewClassQueries(classes, new(MockMemberReadStore), pricing.NewEngine(), time.UTC)
		got, err := q.GetByID(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
		assert.Equal(t, 7, got.Available())
	})

	t.Run("not found", func(t *testing.T) {
		classes := new(MockClassReadStore)
		classes.On("FindByID", mock.Anything, mock.Anything).
			Return(nil, infra.WrapRepoErr("class not found", nil, infra.KindNotFound))

		q := queries.NewClassQueries(classes, new(MockMemberReadStore), pricing.NewEngine(), time.UTC)
		_, err := q.GetByID(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrClassNotFound))
	})

	t.Run("database failure", func(t *testing.T) {
		classes := new(MockClassReadStore)
		classes.On("FindByID", mock.Anything, mock.Anything).
			Return(nil, infra.WrapRepoErr("boom", assert.AnError))

		q := queries.NewClassQueries(classes, new(MockMemberReadStore), pricing.NewEngine(), time.UTC)
		_, err := q.GetByID(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestClassQueries_List(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("first page with next cursor", func(t *testing.T) {
		rows := []*queries.ClassView{
			classView(10, 0, base),
			classView(10, 0, base.Add(time.Hour)),
			classView(10, 0, base.Add(2*time.Hour)),
		}
		classes := new(MockClassReadStore)
		classes.On("FindFirstPage", mock.Anything, int32(3)).Return(rows, nil)

		q := queries.NewClassQueries(classes, new(MockMemberReadStore), pricing.NewEngine(), time.UTC)
		items, next, err := q.List(ctx, nil, 2)
		require.NoError(t, err)
		assert.Len(t, items, 2)
		require.NotNil(t, next)

		startsAt, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.True(t, startsAt.Equal(rows[1].StartsAt))
		assert.Equal(t, rows[1].ID, id)
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		rows := []*queries.ClassView{classView(10, 0, base)}
		classes := new(MockClassReadStore)
		classes.On("FindFirstPage", mock.Anything, int32(queries.DefaultListLimit+1)).Return(rows, nil)

		q := queries.NewClassQueries(classes, new(MockMemberReadStore), pricing.NewEngine(), time.UTC)
		items, next, err := q.List(ctx, &queries.Cursor{}, 0)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Nil(t, next)
	})

	t.Run("keyset page", func(t *testing.T) {
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(base, lastID)}
		classes := new(MockClassReadStore)
		classes.On("FindKeyset", mock.Anything, mock.MatchedBy(func(ts time.Time) bool { return ts.Equal(base) }), lastID, int32(11)).
			Return([]*queries.ClassView{}, nil)

		q := queries.NewClassQueries(classes, new(MockMemberReadStore), pricing.NewEngine(), time.UTC)
		items, next, err := q.List(ctx, cursor, 10)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Nil(t, next)
		classes.AssertExpectations(t)
	})

	t.Run("invalid cursor", func(t *testing.T) {
		q := queries.NewClassQueries(new(MockClassReadStore), new(MockMemberReadStore), pricing.NewEngine(), time.UTC)
		_, _, err := q.List(ctx, &queries.Cursor{After: "not-a-cursor"}, 10)
		assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
		assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
	})
}

func TestClassQueries_Quote(t *testing.T) {
	ctx := context.Background()
	peak := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)

	t.Run("student at peak with surge", func(t *testing.T) {
		member := &queries.MemberView{ID: uuid.New(), Name: "Ken", Membership: "student"}
		class := classView(10, 9, peak)

		members := new(MockMemberReadStore)
		members.On("FindByID", mock.Anything, member.ID).Return(member, nil)
		classes := new(MockClassReadStore)
		classes.On("FindByID", mock.Anything, class.ID).Return(class, nil)

		q := queries.NewClassQueries(classes, members, pricing.NewEngine(), time.UTC)
		got, err := q.Quote(ctx, class.ID, member.ID)
		require.NoError(t, err)
		assert.Equal(t, 132.60, got.FinalPrice)
		assert.Equal(t, 0.9, got.OccupancyRate)
		assert.Equal(t, "student", got.Membership)
	})

	t.Run("studio time zone decides peak", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)

		member := &queries.MemberView{ID: uuid.New(), Membership: "standard"}
		// 10:00 UTC is 19:00 in Tokyo
		class := classView(10, 0, time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC))

		members := new(MockMemberReadStore)
		members.On("FindByID", mock.Anything, member.ID).Return(member, nil)
		classes := new(MockClassReadStore)
		classes.On("FindByID", mock.Anything, class.ID).Return(class, nil)

		got, err := queries.NewClassQueries(classes, members, pricing.NewEngine(), tokyo).Quote(ctx, class.ID, member.ID)
		require.NoError(t, err)
		assert.Equal(t, 1.2, got.PeakFactor)

		got, err = queries.NewClassQueries(classes, members, pricing.NewEngine(), time.UTC).Quote(ctx, class.ID, member.ID)
		require.NoError(t, err)
		assert.Equal(t, 1.0, got.PeakFactor)
	})

	t.Run("full class", func(t *testing.T) {
		member := &queries.MemberView{ID: uuid.New(), Membership: "premium"}
		class := classView(5, 5, peak)

		members := new(MockMemberReadStore)
		members.On("FindByID", mock.Anything, member.ID).Return(member, nil)
		classes := new(MockClassReadStore)
		classes.On("FindByID", mock.Anything, class.ID).Return(class, nil)

		_, err := queries.NewClassQueries(classes, members, pricing.NewEngine(), time.UTC).Quote(ctx, class.ID, member.ID)
		assert.True(t, errs.Is(err, capacity.ErrClassFull))
		assert.True(t, errs.Is(err, errs.ErrCapacityExceeded))
	})

	t.Run("unknown member", func(t *testing.T) {
		members := new(MockMemberReadStore)
		members.On("FindByID", mock.Anything, mock.Anything).
			Return(nil, infra.WrapRepoErr("member not found", nil, infra.KindNotFound))

		_, err := queries.NewClassQueries(new(MockClassReadStore), members, pricing.NewEngine(), time.UTC).Quote(ctx, uuid.New(), uuid.New())
		assert.True(t, errs.Is(err, errs.ErrMemberNotFound))
	})

	t.Run("unknown class", func(t *testing.T) {
		member := &queries.MemberView{ID: uuid.New(), Membership: "standard"}
		members := new(MockMemberReadStore)
		members.On("FindByID", mock.Anything, member.ID).Return(member, nil)
		classes := new(MockClassReadStore)
		classes.On("FindByID", mock.Anything, mock.Anything).
			Return(nil, infra.WrapRepoErr("class not found", nil, infra.KindNotFound))

		_, err := queries.NewClassQueries(classes, members, pricing.NewEngine(), time.UTC).Quote(ctx, uuid.New(), member.ID)
		assert.True(t, errs.Is(err, errs.ErrClassNotFound))
	})
}
