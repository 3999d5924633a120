package handlers

import (
	portssvc "github.com/SscSPs/retail_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger_app/internal/middleware"
	"github.com/SscSPs/retail_ledger_app/internal/platform/config"
	"github.com/SscSPs/retail_ledger_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// rateLimiter and m may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	health HealthChecker,
	m *metrics.Metrics,
	rateLimiter *limiter.Limiter,
) {
	registerHealthRoutes(r, health)
	if cfg.MetricsEnabled && m != nil {
		r.GET("/metrics", middleware.MetricsEndpoint(m))
	}

	setupAPIV1Routes(r, cfg, services, rateLimiter)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, rateLimiter *limiter.Limiter) {
	handlers := []gin.HandlerFunc{middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)}
	if rateLimiter != nil {
		handlers = append(handlers, middleware.RateLimit(rateLimiter))
	}

	v1 := r.Group("/api/v1", handlers...)
	RegisterAPIRoutes(v1, services)
}

// RegisterAPIRoutes registers every authenticated resource on rg.
func RegisterAPIRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	registerValidators()

	registerReportingRoutes(rg, services.Reporting)
	registerCreditRoutes(rg, services.Credit)
	registerVendorRoutes(rg, services.Vendor)
	registerLedgerRoutes(rg, services.Ledger)
	registerSourceRoutes(rg, services.Sale, services.Order, services.PurchaseOrder)
}
