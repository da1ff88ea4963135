package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/daltekdz/daltekdz_bot/internal/httpapi/api"
	"github.com/daltekdz/daltekdz_bot/internal/httpapi/middleware"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers все HTTP обработчики API
type Handlers struct {
	Auth         *api.AuthHandler
	Store        *api.StoreHandler
	Featured     *api.FeaturedHandler
	Notification *api.NotificationHandler
	Catalog      *api.CatalogHandler
}

// RouterConfig параметры middleware
type RouterConfig struct {
	CORSAllowOrigins   []string
	LoginRatePerMinute int
}

func NewRouter(engine *gin.Engine, cfg RouterConfig, h Handlers, authMiddleware *middleware.AuthMiddleware, logger *zap.Logger) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, middleware.NewIPRateLimiter(cfg.LoginRatePerMinute))
}

func setupMiddleware(engine *gin.Engine, cfg RouterConfig, logger *zap.Logger) {
	// Recovery первым, чтобы ловить панику во всех остальных middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORSAllowOrigins, logger))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, loginLimiter *middleware.IPRateLimiter) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/featured", Handler: h.Featured.ListActive},
			{Method: http.MethodGet, Path: "/services", Handler: h.Catalog.ListServices},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{loginLimiter.Middleware()}},
			})

			authRequired := admin.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/stores", Handler: h.Store.List},
				{Method: http.MethodPatch, Path: "/stores/:id/status", Handler: h.Store.UpdateStatus},
				{Method: http.MethodPatch, Path: "/stores/:id/plan", Handler: h.Store.UpdatePlan},
				{Method: http.MethodDelete, Path: "/stores/:id", Handler: h.Store.Delete},

				{Method: http.MethodGet, Path: "/featured", Handler: h.Featured.List},
				{Method: http.MethodPost, Path: "/featured", Handler: h.Featured.Add},
				{Method: http.MethodPost, Path: "/featured/reorder", Handler: h.Featured.Reorder},
				{Method: http.MethodDelete, Path: "/featured/:id", Handler: h.Featured.Remove},
				{Method: http.MethodPost, Path: "/featured/:id/extend", Handler: h.Featured.Extend},

				{Method: http.MethodGet, Path: "/notifications", Handler: h.Notification.List},
				{Method: http.MethodPatch, Path: "/notifications/:id/read", Handler: h.Notification.MarkRead},
			})
		}
	}
}

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
