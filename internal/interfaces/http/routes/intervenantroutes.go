package routes

import (
	"github.com/gin-gonic/gin"

	intervenanthandlers "sitelog/internal/interfaces/http/handlers/intervenant"
	"sitelog/internal/interfaces/http/middleware"
	"sitelog/internal/shared/authorization"
)

type IntervenantRouteConfig struct {
	IntervenantHandler *intervenanthandlers.IntervenantHandler
	CompanyHandler     *intervenanthandlers.CompanyHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

func SetupIntervenantRoutes(engine *gin.Engine, config *IntervenantRouteConfig) {
	intervenants := engine.Group("/intervenants")
	intervenants.Use(config.AuthMiddleware.RequireAuth())
	{
		intervenants.GET("", config.IntervenantHandler.ListIntervenants)
		intervenants.POST("",
			authorization.RequireWrite(),
			config.IntervenantHandler.CreateIntervenant)
		intervenants.GET("/:id", config.IntervenantHandler.GetIntervenant)
		intervenants.PUT("/:id",
			authorization.RequireWrite(),
			config.IntervenantHandler.UpdateIntervenant)
		intervenants.DELETE("/:id",
			authorization.RequireWrite(),
			config.IntervenantHandler.DeleteIntervenant)
	}

	companies := engine.Group("/companies")
	companies.Use(config.AuthMiddleware.RequireAuth())
	{
		companies.GET("", config.CompanyHandler.ListCompanies)
		companies.POST("",
			authorization.RequireWrite(),
			config.CompanyHandler.CreateCompany)
		companies.GET("/:id", config.CompanyHandler.GetCompany)
		companies.PUT("/:id",
			authorization.RequireWrite(),
			config.CompanyHandler.UpdateCompany)
		companies.DELETE("/:id",
			authorization.RequireWrite(),
			config.CompanyHandler.DeleteCompany)
	}
}
