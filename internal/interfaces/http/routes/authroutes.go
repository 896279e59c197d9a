package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "sitelog/internal/interfaces/http/handlers/auth"
	"sitelog/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *authhandlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	LoginRateLimit gin.HandlerFunc
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		login := auth.Group("")
		if config.LoginRateLimit != nil {
			login.Use(config.LoginRateLimit)
		}
		login.POST("/login", config.AuthHandler.Login)

		auth.POST("/refresh", config.AuthHandler.RefreshToken)
		auth.GET("/me",
			config.AuthMiddleware.RequireAuth(),
			config.AuthHandler.GetProfile)
	}
}
