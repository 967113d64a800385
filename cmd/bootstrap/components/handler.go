package components

import (
	"agenda-web/internal/handler"
	"agenda-web/internal/handler/api"
	"agenda-web/internal/handler/middleware"
	"agenda-web/internal/pkg/clock"
	"agenda-web/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewConfigHandler,
		api.NewAdminHandler,
		middleware.NewSessionMiddleware,
		middleware.NewAdminAuthMiddleware,
		func(cfg config.Config, c clock.Clock) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit, c)
		},
		NewHandlers,
		NewMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(booking *api.BookingHandler, cfgHandler *api.ConfigHandler, adminHandler *api.AdminHandler) handler.Handlers {
	return handler.Handlers{
		Booking: booking,
		Config:  cfgHandler,
		Admin:   adminHandler,
	}
}

func NewMiddlewares(
	cfg config.Config,
	logger *middleware.Logger,
	sessions *middleware.SessionMiddleware,
	adminAuth *middleware.AdminAuthMiddleware,
	limiter *middleware.RateLimiter,
) handler.Middlewares {
	return handler.Middlewares{
		Logger:    logger,
		CORS:      middleware.NewCORSMiddleware(cfg.CORS),
		Session:   sessions,
		AdminAuth: adminAuth,
		RateLimit: limiter,
	}
}
