package bootstrap

import (
	"fitness-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	TracingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	JanitorModule,
)
