package routes

import (
	"net/http"

	"livelink/internal/config"
	handlers "livelink/internal/handlers/admin"
	"livelink/internal/middleware"
	"livelink/internal/utils"
	"livelink/pkg/logger"
	"livelink/pkg/websocket"

	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	Config    *config.Config
	Logger    *logger.Logger
	Admin     *handlers.AdminHandler
	Health    *handlers.HealthHandler
	WebSocket *websocket.Handler
}

// NewRouter builds the gin engine with global middleware and every route.
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	cfg := deps.Config
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		return nil, err
	}

	// Global middleware
	router.Use(gin.RecoveryWithWriter(deps.Logger.Writer()))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins, cfg.Security.OperatorHeader))

	operator := middleware.OperatorRequired(cfg.Security.OperatorHeader, cfg.Console.OperatorID)

	v1 := router.Group("/api/v1")
	SetupAdminRoutes(v1, deps.Admin, operator)

	if deps.WebSocket != nil {
		SetupWebSocketRoutes(router, cfg.WebSocket.Path, deps.WebSocket, operator)
	}

	// Health check
	router.GET("/health", deps.Health.Health)

	router.NoRoute(func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusNotFound, utils.ErrCodeNotFound, "route not found")
	})

	return router, nil
}
