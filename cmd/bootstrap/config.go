package bootstrap

import (
	"time"

	"fitness-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewStudioLocation,
	),
)

// NewStudioLocation is the zone peak hours are evaluated in.
func NewStudioLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Studio.Location()
}
