package routes

import (
	"github.com/gin-gonic/gin"

	audithandlers "sitelog/internal/interfaces/http/handlers/audit"
	"sitelog/internal/interfaces/http/middleware"
	"sitelog/internal/shared/authorization"
)

type AuditRouteConfig struct {
	AuditHandler   *audithandlers.AuditHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAuditRoutes(engine *gin.Engine, config *AuditRouteConfig) {
	audit := engine.Group("/audit")
	audit.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		audit.GET("", config.AuditHandler.ListAuditLogs)
		audit.GET("/entity/:id", config.AuditHandler.ListEntityAuditLogs)
	}
}
