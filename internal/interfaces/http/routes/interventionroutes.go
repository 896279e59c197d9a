package routes

import (
	"github.com/gin-gonic/gin"

	interventionhandlers "sitelog/internal/interfaces/http/handlers/intervention"
	"sitelog/internal/interfaces/http/middleware"
	"sitelog/internal/shared/authorization"
)

type InterventionRouteConfig struct {
	InterventionHandler *interventionhandlers.InterventionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupInterventionRoutes(engine *gin.Engine, config *InterventionRouteConfig) {
	interventions := engine.Group("/interventions")
	interventions.Use(config.AuthMiddleware.RequireAuth())
	{
		// Static paths must come before /:id so gin does not treat them
		// as identifiers.
		interventions.GET("/stats", config.InterventionHandler.GetStats)
		interventions.GET("/export/csv", config.InterventionHandler.ExportInterventions)

		interventions.GET("", config.InterventionHandler.ListInterventions)
		interventions.POST("",
			authorization.RequireWrite(),
			config.InterventionHandler.CreateIntervention)

		interventions.POST("/:id/archive",
			authorization.RequireWrite(),
			config.InterventionHandler.ArchiveIntervention)
		interventions.POST("/:id/restore",
			authorization.RequireWrite(),
			config.InterventionHandler.RestoreIntervention)

		interventions.GET("/:id", config.InterventionHandler.GetIntervention)
		interventions.PUT("/:id",
			authorization.RequireWrite(),
			config.InterventionHandler.UpdateIntervention)
		interventions.DELETE("/:id",
			authorization.RequireWrite(),
			config.InterventionHandler.DeleteIntervention)
	}
}
