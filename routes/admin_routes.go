package routes

import (
	handlers "livelink/internal/handlers/admin"
	"livelink/pkg/websocket"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes sets up the admin console API under r.
func SetupAdminRoutes(r *gin.RouterGroup, adminHandler *handlers.AdminHandler, operator gin.HandlerFunc) {
	admin := r.Group("/admin")
	admin.Use(operator)
	{
		admin.GET("/nav", adminHandler.GetNav)
		admin.GET("/dashboard", adminHandler.GetDashboard)
		admin.GET("/settings", adminHandler.GetSettings)

		// Entity pages
		admin.GET("/pages/:entity", adminHandler.ListPage)
		admin.GET("/pages/:entity/counts", adminHandler.GetCounts)
		admin.GET("/pages/:entity/:id", adminHandler.GetRecord)
		admin.POST("/pages/:entity/:id/actions/:action", adminHandler.PerformAction)

		// Audit trail
		admin.GET("/audit", adminHandler.GetRecentAudit)
		admin.GET("/audit/pages/:entity/:id", adminHandler.GetResourceHistory)
		admin.GET("/audit/operators/:operator", adminHandler.GetOperatorHistory)
	}
}

// SetupWebSocketRoutes serves the live audit feed at path.
func SetupWebSocketRoutes(r gin.IRouter, path string, wsHandler *websocket.Handler, operator gin.HandlerFunc) {
	r.GET(path, operator, wsHandler.HandleWebSocket)
}
