package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fitness-booking/internal/handler/api"
	"fitness-booking/internal/handler/middleware"
	"fitness-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Members      *api.MemberHandler
	Classes      *api.ClassHandler
	Reservations *api.ReservationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.Tracing())
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{limiter.Middleware()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/members"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Members.Register, Mw: limited},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Members.Get},
			{Method: http.MethodGet, Path: "/:id/reservations", Handler: h.Members.ListReservations},
		})

		addRoutes(apiGroup.Group("/classes"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Classes.Schedule, Mw: limited},
			{Method: http.MethodGet, Path: "", Handler: h.Classes.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Classes.Get},
			{Method: http.MethodGet, Path: "/:id/quote", Handler: h.Classes.Quote},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservations.Create, Mw: limited},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservations.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservations.Cancel, Mw: limited},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
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
