package handlers

import (
	"fmt"

	"github.com/SscSPs/lifefin_backend/cmd/docs"
	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	portssvc "github.com/SscSPs/lifefin_backend/internal/core/ports/services"
	"github.com/SscSPs/lifefin_backend/internal/middleware"
	"github.com/SscSPs/lifefin_backend/internal/platform/config"
	"github.com/SscSPs/lifefin_backend/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// posthogClient may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {
	r.GET("/health", getHealth)

	loginLimiter, err := middleware.NewRateLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("invalid LOGIN_RATE_LIMIT %q: %w", cfg.LoginRateLimit, err)
	}
	RegisterAuthRoutes(r, cfg.JWTSecret, loginLimiter, services.User, services.TokenService)

	if err := setupAPIV1Routes(r, cfg, services, posthogClient); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {
	applyLimiter, err := middleware.NewRateLimiter(cfg.LoanApplyRateLimit)
	if err != nil {
		return fmt.Errorf("invalid LOAN_APPLY_RATE_LIMIT %q: %w", cfg.LoanApplyRateLimit, err)
	}

	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	RegisterUserRoutes(v1, services.User)
	RegisterTransactionRoutes(v1, services.Transaction)
	RegisterSavingsRoutes(v1, services.Savings)
	RegisterScoreRoutes(v1, services.Scoring)
	RegisterLoanRoutes(v1, services.Loan, applyLimiter)
	RegisterInvestmentRoutes(v1, services.Investment, posthogClient)
	RegisterDashboardRoutes(v1, services.Dashboard)

	admin := v1.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	RegisterScoreConfigRoutes(admin, services.ScoreConfig)
	RegisterAdminLoanRoutes(admin, services.Loan)
	RegisterAdminDashboardRoutes(admin, services.Dashboard)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
