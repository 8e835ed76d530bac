package handlers

import (
	"github.com/ChantierApp/site_ledger_app/cmd/docs"
	portssvc "github.com/ChantierApp/site_ledger_app/internal/core/ports/services"
	"github.com/ChantierApp/site_ledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	RegisterCapitalRoutes(v1, services.Capital, services.Summary)
	registerDashboardRoutes(v1, services.Summary)
	registerFundingRoutes(v1, services.Funding)
	registerExpenseRoutes(v1, services.Expense)
	registerPurchaseRoutes(v1, services.Purchase)
	registerPieceworkRoutes(v1, services.Piecework)
	registerDailyWageRoutes(v1, services.DailyWage)
	registerWorkerPaymentRoutes(v1, services.WorkerPayment)
	registerSupplierRoutes(v1, services.Supplier)
	registerWorkerRoutes(v1, services.Worker)
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
