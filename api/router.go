// Package api wires middleware and controllers into the HTTP surface.
package api

import (
	"storefront/api/catalog"
	"storefront/api/discount"
	"storefront/api/health"
	"storefront/api/middleware"
	"storefront/api/order"
	"storefront/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router route configuration
type Router struct {
	engine             *gin.Engine
	config             *config.Config
	healthController   *health.Controller
	catalogController  *catalog.Controller
	discountController *discount.Controller
	orderController    *order.Controller
}

// NewRouter creates the router with the full middleware chain.
func NewRouter(
	cfg *config.Config,
	healthController *health.Controller,
	catalogController *catalog.Controller,
	discountController *discount.Controller,
	orderController *order.Controller,
) *Router {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Middleware order matters: the request id must exist before anything
	// logs, and recovery must wrap everything that can panic.
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.RecoveryMiddleware())
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))
	engine.Use(middleware.RateLimitMiddleware(&cfg.Server.RateLimit))
	engine.Use(middleware.IdentityMiddleware())

	return &Router{
		engine:             engine,
		config:             cfg,
		healthController:   healthController,
		catalogController:  catalogController,
		discountController: discountController,
		orderController:    orderController,
	}
}

// SetupRoutes sets up all routes.
func (r *Router) SetupRoutes() {
	apiGroup := r.engine.Group("/api/v1")
	{
		r.healthController.RegisterRoutes(apiGroup)
		r.catalogController.RegisterRoutes(apiGroup)
		r.discountController.RegisterRoutes(apiGroup)
		r.orderController.RegisterRoutes(apiGroup)
	}

	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"name":    r.config.App.Name,
			"version": r.config.App.Version,
			"env":     r.config.App.Env,
			"health":  "/api/v1/health",
			"metrics": "/metrics",
		})
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
