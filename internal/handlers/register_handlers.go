package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openbookshq/openbooks/cmd/docs"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
	"github.com/openbookshq/openbooks/internal/middleware"
	"github.com/openbookshq/openbooks/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	registerAuthRoutes(r, cfg, services)
	registerGoogleOAuthRoutes(r, cfg, services)

	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 surface. Everything
// under the company group additionally runs the tenant guard, which resolves
// the target company and verifies membership before any handler executes.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerCompanyRoutes(v1, services)

	companyScoped := v1.Group("/companies/:companyID", middleware.CompanyContext(services.User, services.Company))
	registerAccountRoutes(companyScoped, services.Account)
	registerJournalRoutes(companyScoped, services.Journal)
	registerCustomerRoutes(companyScoped, services.Customer)
	registerVendorRoutes(companyScoped, services.Vendor)
	registerInvoiceRoutes(companyScoped, services.Invoice)
	registerExpenseRoutes(companyScoped, services.Expense)

	// The dashboard carries no company in the path; the tenant guard falls
	// back to the user's selected company.
	dashboard := v1.Group("/dashboard", middleware.CompanyContext(services.User, services.Company))
	registerDashboardRoutes(dashboard, services.Dashboard)
}

// newAuthRateLimiter builds the per-IP limiter applied to credential routes.
func newAuthRateLimiter(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimitRate)
	if err != nil {
		// A broken rate format is a deployment mistake, not a reason to run
		// the credential routes uncapped.
		rate, _ = limiter.NewRateFromFormatted("100-M")
	}
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}

// setupSwaggerRoutes exposes API docs outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
