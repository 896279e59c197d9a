package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	auditusecases "sitelog/internal/application/audit/usecases"
	authusecases "sitelog/internal/application/auth/usecases"
	intervenantusecases "sitelog/internal/application/intervenant/usecases"
	interventionusecases "sitelog/internal/application/intervention/usecases"
	predefinedusecases "sitelog/internal/application/predefined/usecases"
	"sitelog/internal/infrastructure/auth"
	"sitelog/internal/infrastructure/config"
	"sitelog/internal/infrastructure/ratelimit"
	"sitelog/internal/infrastructure/repository"
	audithandlers "sitelog/internal/interfaces/http/handlers/audit"
	authhandlers "sitelog/internal/interfaces/http/handlers/auth"
	intervenanthandlers "sitelog/internal/interfaces/http/handlers/intervenant"
	interventionhandlers "sitelog/internal/interfaces/http/handlers/intervention"
	predefinedhandlers "sitelog/internal/interfaces/http/handlers/predefined"
	"sitelog/internal/interfaces/http/middleware"
	"sitelog/internal/interfaces/http/routes"
	"sitelog/internal/shared/db"
	"sitelog/internal/shared/logger"
)

// Router assembles the HTTP surface: repositories, use cases, handlers
// and route registration.
type Router struct {
	engine *gin.Engine
}

// NewRouter wires every dependency. redisClient may be nil, in which
// case login throttling is disabled.
func NewRouter(gdb *gorm.DB, cfg *config.Config, redisClient *redis.Client) *Router {
	log := logger.NewLogger()

	jwtService := auth.NewJWTService(cfg.Auth.JWT)
	hasher := auth.NewBcryptHasher(cfg.Auth.Password.BcryptCost)
	txManager := db.NewTransactionManager(gdb)

	interventionRepo := repository.NewInterventionRepository(gdb)
	auditRepo := repository.NewAuditRepository(gdb)
	predefinedRepo := repository.NewPredefinedValueRepository(gdb)
	userRepo := repository.NewUserRepository(gdb)
	intervenantRepo := repository.NewIntervenantRepository(gdb)
	companyRepo := repository.NewCompanyRepository(gdb)

	interventionHandler := interventionhandlers.NewInterventionHandler(
		interventionusecases.NewCreateInterventionUseCase(interventionRepo, auditRepo, log),
		interventionusecases.NewUpdateInterventionUseCase(interventionRepo, auditRepo, log),
		interventionusecases.NewDeleteInterventionUseCase(interventionRepo, auditRepo, log),
		interventionusecases.NewArchiveInterventionUseCase(interventionRepo, auditRepo, log),
		interventionusecases.NewRestoreInterventionUseCase(interventionRepo, auditRepo, log),
		interventionusecases.NewGetInterventionUseCase(interventionRepo, log),
		interventionusecases.NewListInterventionsUseCase(interventionRepo, log),
		interventionusecases.NewGetInterventionStatsUseCase(interventionRepo, log),
		interventionusecases.NewExportInterventionsUseCase(interventionRepo, userRepo, log),
	)

	auditHandler := audithandlers.NewAuditHandler(
		auditusecases.NewListAuditLogsUseCase(auditRepo, userRepo, log),
		auditusecases.NewListEntityAuditLogsUseCase(auditRepo, userRepo, log),
	)

	predefinedHandler := predefinedhandlers.NewPredefinedValueHandler(
		predefinedusecases.NewCreateValueUseCase(predefinedRepo, log),
		predefinedusecases.NewUpdateValueUseCase(predefinedRepo, log),
		predefinedusecases.NewDeleteValueUseCase(predefinedRepo, log),
		predefinedusecases.NewDeactivateValueUseCase(predefinedRepo, log),
		predefinedusecases.NewListValuesByTypeUseCase(predefinedRepo, log),
		predefinedusecases.NewListAllValuesUseCase(predefinedRepo, log),
		predefinedusecases.NewReorderValuesUseCase(predefinedRepo, txManager, log),
	)

	authHandler := authhandlers.NewAuthHandler(
		authusecases.NewLoginUseCase(userRepo, hasher, jwtService, log),
		authusecases.NewRefreshTokenUseCase(jwtService, log),
		authusecases.NewGetProfileUseCase(userRepo, log),
	)

	intervenantHandler := intervenanthandlers.NewIntervenantHandler(
		intervenantusecases.NewCreateIntervenantUseCase(intervenantRepo, companyRepo, log),
		intervenantusecases.NewUpdateIntervenantUseCase(intervenantRepo, log),
		intervenantusecases.NewDeleteIntervenantUseCase(intervenantRepo, log),
		intervenantusecases.NewGetIntervenantUseCase(intervenantRepo, log),
		intervenantusecases.NewListIntervenantsUseCase(intervenantRepo, log),
	)

	companyHandler := intervenanthandlers.NewCompanyHandler(
		intervenantusecases.NewCreateCompanyUseCase(companyRepo, log),
		intervenantusecases.NewUpdateCompanyUseCase(companyRepo, log),
		intervenantusecases.NewDeleteCompanyUseCase(companyRepo, log),
		intervenantusecases.NewGetCompanyUseCase(companyRepo, log),
		intervenantusecases.NewListCompaniesUseCase(companyRepo, log),
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	var loginRateLimit gin.HandlerFunc
	if redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		loginRateLimit = middleware.LoginRateLimit(limiter, ratelimit.Config{
			Limit:  10,
			Window: time.Minute,
		}, log)
	}

	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.Logger(log),
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
		LoginRateLimit: loginRateLimit,
	})
	routes.SetupInterventionRoutes(engine, &routes.InterventionRouteConfig{
		InterventionHandler: interventionHandler,
		AuthMiddleware:      authMiddleware,
	})
	routes.SetupAuditRoutes(engine, &routes.AuditRouteConfig{
		AuditHandler:   auditHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupPredefinedRoutes(engine, &routes.PredefinedRouteConfig{
		PredefinedValueHandler: predefinedHandler,
		AuthMiddleware:         authMiddleware,
	})
	routes.SetupIntervenantRoutes(engine, &routes.IntervenantRouteConfig{
		IntervenantHandler: intervenantHandler,
		CompanyHandler:     companyHandler,
		AuthMiddleware:     authMiddleware,
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
