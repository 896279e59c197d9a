package routes

import (
	"github.com/gin-gonic/gin"

	predefinedhandlers "sitelog/internal/interfaces/http/handlers/predefined"
	"sitelog/internal/interfaces/http/middleware"
	"sitelog/internal/shared/authorization"
)

type PredefinedRouteConfig struct {
	PredefinedValueHandler *predefinedhandlers.PredefinedValueHandler
	AuthMiddleware         *middleware.AuthMiddleware
}

func SetupPredefinedRoutes(engine *gin.Engine, config *PredefinedRouteConfig) {
	predefined := engine.Group("/predefined")
	predefined.Use(config.AuthMiddleware.RequireAuth())
	{
		// Reads are open to every authenticated role.
		predefined.GET("", config.PredefinedValueHandler.ListAllValues)
		predefined.GET("/:type", config.PredefinedValueHandler.ListValuesByType)

		// Taxonomy management is reserved to administrators.
		// Wildcard names must stay consistent inside each method tree,
		// which is why deactivate lives under PUT next to update.
		predefined.POST("",
			authorization.RequireAdmin(),
			config.PredefinedValueHandler.CreateValue)
		predefined.POST("/:type/reorder",
			authorization.RequireAdmin(),
			config.PredefinedValueHandler.ReorderValues)
		predefined.PUT("/:id",
			authorization.RequireAdmin(),
			config.PredefinedValueHandler.UpdateValue)
		predefined.PUT("/:id/deactivate",
			authorization.RequireAdmin(),
			config.PredefinedValueHandler.DeactivateValue)
		predefined.DELETE("/:id",
			authorization.RequireAdmin(),
			config.PredefinedValueHandler.DeleteValue)
	}
}
