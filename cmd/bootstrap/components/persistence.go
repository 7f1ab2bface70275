package components

import (
	"fitness-booking/internal/infra/query"
	"fitness-booking/internal/infra/readstore"
	"fitness-booking/internal/infra/uow"
	"fitness-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Member
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MemberReadQueries)),
		),
		fx.Annotate(
			readstore.NewMemberReadStore,
			fx.As(new(queries.MemberReadStore)),
		),
		// Class
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ClassReadQueries)),
		),
		fx.Annotate(
			readstore.NewClassReadStore,
			fx.As(new(queries.ClassReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
