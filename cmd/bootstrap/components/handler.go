package components

import (
	"fitness-booking/internal/handler"
	"fitness-booking/internal/handler/api"
	"fitness-booking/internal/handler/middleware"
	"fitness-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewMemberHandler,
		api.NewClassHandler,
		api.NewReservationHandler,
		NewRateLimiter,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit)
}

func NewHandlers(members *api.MemberHandler, classes *api.ClassHandler, reservations *api.ReservationHandler) handler.Handlers {
	return handler.Handlers{
		Members:      members,
		Classes:      classes,
		Reservations: reservations,
	}
}
