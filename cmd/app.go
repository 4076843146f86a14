/*
Package cmd - application bootstrap.

Wiring is explicit: config first, then logger, then the store selected
by configuration (in-memory by default, MySQL when configured), then
repositories, domain services, application services, controllers and
router. No DI container, the dependency graph is readable top to bottom.
*/
package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront/api"
	catalogapi "storefront/api/catalog"
	discountapi "storefront/api/discount"
	"storefront/api/health"
	orderapi "storefront/api/order"
	"storefront/config"

	catalogapp "storefront/application/catalog"
	discountapp "storefront/application/discount"
	orderapp "storefront/application/order"

	"storefront/domain/catalog"
	"storefront/domain/discount"
	"storefront/domain/order"
	"storefront/domain/shared"

	"storefront/infrastructure/persistence/memory"
	"storefront/infrastructure/persistence/mysql"
	"storefront/infrastructure/persistence/retry"

	"storefront/pkg/logger"

	"go.uber.org/zap"
)

// App application container
type App struct {
	config *config.Config
	router *api.Router
}

// NewApp builds the application from configuration.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(&cfg.Log, cfg.App.Env); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	var (
		products   catalog.Repository
		discounts  discount.Repository
		orders     order.Repository
		uowFactory shared.UnitOfWorkFactory
		sqlDB      *sql.DB
	)

	switch cfg.Database.Type {
	case "mysql":
		dbConfig := &mysql.Config{
			Host:            cfg.Database.Host,
			Port:            cfg.Database.Port,
			Username:        cfg.Database.Username,
			Password:        cfg.Database.Password,
			Database:        cfg.Database.Database,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			LogLevel:        cfg.Database.LogLevel,
		}
		db, err := dbConfig.Connect()
		if err != nil {
			return nil, fmt.Errorf("connect to mysql: %w", err)
		}
		if err := mysql.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrate schema: %w", err)
		}
		if sqlDB, err = db.DB(); err != nil {
			return nil, fmt.Errorf("unwrap sql.DB: %w", err)
		}

		products = mysql.NewProductRepository(db)
		discounts = mysql.NewDiscountRepository(db, cfg.Pricing.Currency)
		orders = mysql.NewOrderRepository(db)
		uowFactory = mysql.NewUnitOfWorkFactory(db, retry.FromAppConfig(cfg))

	case "memory":
		logger.Info("Using in-memory persistence")
		products = memory.NewProductRepository()
		discounts = memory.NewDiscountRepository()
		orders = memory.NewOrderRepository()
		uowFactory = memory.NewUnitOfWorkFactory()

	default:
		return nil, fmt.Errorf("unknown database type %q", cfg.Database.Type)
	}

	validator := discount.NewValidator(discounts)
	pricing := order.NewPricingCalculator(cfg.Pricing.TaxRateBasisPoints, cfg.Pricing.ShippingFee, cfg.Pricing.Currency)
	numbers := order.NewNumberGenerator(orders,
		order.WithNumberFormat(cfg.OrderNumber.Prefix, cfg.OrderNumber.SuffixDigits),
		order.WithNumberBounds(cfg.OrderNumber.WidenAfter, cfg.OrderNumber.MaxAttempts),
	)

	orderService := orderapp.NewService(uowFactory, products, orders, validator, pricing, numbers)
	catalogService := catalogapp.NewService(products, cfg.Pricing.Currency)
	discountService := discountapp.NewService(discounts, cfg.Pricing.Currency)

	healthController := health.NewController(cfg, sqlDB)
	catalogController := catalogapi.NewController(catalogService)
	discountController := discountapi.NewController(discountService)
	orderController := orderapi.NewController(orderService)

	router := api.NewRouter(cfg, healthController, catalogController, discountController, orderController)
	router.SetupRoutes()

	return &App{config: cfg, router: router}, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run() error {
	server := &http.Server{
		Addr:         ":" + a.config.Server.Port,
		Handler:      a.router.GetEngine(),
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting",
			zap.String("addr", server.Addr),
			zap.String("env", a.config.App.Env),
			zap.String("db_type", a.config.Database.Type),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	_ = logger.Sync()
	logger.Info("Server stopped")
	return nil
}
