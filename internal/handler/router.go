package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"agenda-web/internal/handler/api"
	"agenda-web/internal/handler/middleware"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Booking *api.BookingHandler
	Config  *api.ConfigHandler
	Admin   *api.AdminHandler
}

// Middlewares groups the per-route middleware. Logger carries request metrics.
type Middlewares struct {
	Logger    *middleware.Logger
	CORS      gin.HandlerFunc
	Session   *middleware.SessionMiddleware
	AdminAuth *middleware.AdminAuthMiddleware
	RateLimit *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, h Handlers, mw Middlewares, gatherer prometheus.Gatherer) {
	setupMiddleware(engine, mw)
	setupRoutes(engine, h, mw, gatherer)
}

func setupMiddleware(engine *gin.Engine, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(mw.CORS)
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{mw.RateLimit.Limit()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/config", Handler: h.Config.Get},
		})

		bookingGroup := apiGroup.Group("/booking")
		{
			addRoutes(bookingGroup, []route{
				{Method: http.MethodPost, Path: "/session", Handler: h.Booking.StartSession, Mw: []gin.HandlerFunc{mw.Session.StartSession()}},
			})

			sessionRequired := bookingGroup.Group("")
			sessionRequired.Use(mw.Session.RequireSession())
			addRoutes(sessionRequired, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/services/:id/toggle", Handler: h.Booking.ToggleService},
				{Method: http.MethodPut, Path: "/date", Handler: h.Booking.SetDate},
				{Method: http.MethodPost, Path: "/availability", Handler: h.Booking.ReloadAvailability},
				{Method: http.MethodPut, Path: "/slot", Handler: h.Booking.SelectSlot},
				{Method: http.MethodPost, Path: "/submit", Handler: h.Booking.Submit, Mw: limited},
				{Method: http.MethodPost, Path: "/reset", Handler: h.Booking.Reset},
			})
		}

		adminGroup := apiGroup.Group("/admin")
		{
			addRoutes(adminGroup, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Admin.Login, Mw: limited},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Admin.Logout},
			})

			authRequired := adminGroup.Group("")
			authRequired.Use(mw.AdminAuth.RequireAdmin())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Admin.Verify},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Admin.Stats},
				{Method: http.MethodGet, Path: "/appointments", Handler: h.Admin.ListAppointments},
				{Method: http.MethodPatch, Path: "/appointments/:id/status", Handler: h.Admin.ChangeStatus},
				{Method: http.MethodDelete, Path: "/appointments/:id", Handler: h.Admin.DeleteAppointment},
				{Method: http.MethodPost, Path: "/password", Handler: h.Admin.ChangePassword},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
