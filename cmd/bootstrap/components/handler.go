package components

import (
	"lodging-service/internal/handler"
	"lodging-service/internal/handler/api"
	"lodging-service/internal/handler/middleware"
	"lodging-service/internal/pkg/clock"
	"lodging-service/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewHotelHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
		func(cfg config.Config, clk clock.Clock) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit, clk)
		},
	),
	fx.Invoke(handler.NewRouter),
)
