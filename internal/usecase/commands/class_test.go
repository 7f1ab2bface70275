//go:build unit

package commands_test

import (
	"context"
	"math"
	"testing"

	"fitness-booking/internal/pkg/clock"
	"fitness-booking/internal/pkg/errs"
	"fitness-booking/internal/usecase/commands"
	"fitness-booking/tests/common/builder"
	"fitness-booking/tests/common/fakeuow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassCommands_Schedule(t *testing.T) {
	ctx := context.Background()

	t.Run("success: stores the class", func(t *testing.T) {
		store := fakeuow.New()
		cmd := commands.NewClassCommands(store, clock.NewMockClock(bookingNow))
		b := builder.NewClassBuilder().WithCapacity(200).WithBasePrice(0)

		result, err := cmd.Schedule(ctx, b.BuildScheduleRequestDTO())

		require.NoError(t, err)
		assert.Equal(t, 200, result.Capacity)
		assert.Equal(t, 0.0, result.BasePrice)
		assert.Equal(t, b.StartsAt, result.StartsAt)
		_, ok := store.Classes[result.ID]
		assert.True(t, ok)
	})

	testCases := []struct {
		name   string
		mutate func(*builder.ClassBuilder)
	}{
		{name: "error: zero capacity", mutate: func(b *builder.ClassBuilder) { b.WithCapacity(0) }},
		{name: "error: capacity above 200", mutate: func(b *builder.ClassBuilder) { b.WithCapacity(201) }},
		{name: "error: negative base price", mutate: func(b *builder.ClassBuilder) { b.WithBasePrice(-1) }},
		{name: "error: base price above 10000", mutate: func(b *builder.ClassBuilder) { b.WithBasePrice(10000.01) }},
		{name: "error: NaN base price", mutate: func(b *builder.ClassBuilder) { b.WithBasePrice(math.NaN()) }},
		{name: "error: blank instructor", mutate: func(b *builder.ClassBuilder) { b.Instructor = " " }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := fakeuow.New()
			cmd := commands.NewClassCommands(store, clock.NewMockClock(bookingNow))

			result, err := cmd.Schedule(ctx, builder.NewClassBuilder().With(tc.mutate).BuildScheduleRequestDTO())

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
			assert.Empty(t, store.Classes)
		})
	}

	t.Run("error: missing base price", func(t *testing.T) {
		store := fakeuow.New()
		cmd := commands.NewClassCommands(store, clock.NewMockClock(bookingNow))
		req := builder.NewClassBuilder().BuildScheduleRequestDTO()
		req.BasePrice = nil

		_, err := cmd.Schedule(ctx, req)

		assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
	})
}
