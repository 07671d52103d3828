package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"snoozetax/internal/handler/api"
	"snoozetax/internal/handler/middleware"
	"snoozetax/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	alarmHandler *api.AlarmHandler,
	transactionHandler *api.TransactionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, alarmHandler, transactionHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	alarmHandler *api.AlarmHandler,
	transactionHandler *api.TransactionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: authHandler.SignUp},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
				{Method: http.MethodPatch, Path: "/me/settings", Handler: authHandler.UpdateSettings},
			})
		}

		alarms := apiGroup.Group("/alarms")
		alarms.Use(authMiddleware.RequireAuth())
		{
			addRoutes(alarms, []route{
				{Method: http.MethodPost, Path: "", Handler: alarmHandler.CreateAlarm},
				{Method: http.MethodGet, Path: "", Handler: alarmHandler.ListAlarms},
				{Method: http.MethodGet, Path: "/:id", Handler: alarmHandler.GetAlarm},
				{Method: http.MethodPut, Path: "/:id", Handler: alarmHandler.UpdateAlarm},
				{Method: http.MethodPatch, Path: "/:id/toggle", Handler: alarmHandler.ToggleAlarm},
				{Method: http.MethodDelete, Path: "/:id", Handler: alarmHandler.DeleteAlarm},
				{Method: http.MethodPost, Path: "/:id/snooze", Handler: alarmHandler.SnoozeAlarm},
				{Method: http.MethodPost, Path: "/:id/dismiss", Handler: alarmHandler.DismissAlarm},
			})
		}

		transactions := apiGroup.Group("/transactions")
		transactions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(transactions, []route{
				{Method: http.MethodGet, Path: "", Handler: transactionHandler.ListTransactions},
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
