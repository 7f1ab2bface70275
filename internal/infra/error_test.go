//go:build unit

package infra_test

import (
	"testing"

	"fitness-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "no rows is not found", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: infra.KindCheckViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "57014"}, want: infra.KindDBFailure},
		{name: "plain error", err: assert.AnError, want: infra.KindDBFailure},
		{name: "explicit kind wins", err: assert.AnError, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
		{name: "nil error with kind", err: nil, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("operation failed", tt.err, tt.kind...)

			assert.Error(t, err)
			assert.True(t, infra.IsKind(err, tt.want))
			assert.Contains(t, err.Error(), "operation failed")
		})
	}

	t.Run("keeps the driver error in the chain", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505"}
		err := infra.WrapRepoErr("insert failed", pgErr)

		var target *pgconn.PgError
		assert.ErrorAs(t, err, &target)
		assert.Equal(t, "23505", target.Code)
	})
}
