package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	integrationapp "github.com/revoa/backend/internal/application/integration"
	quoteapp "github.com/revoa/backend/internal/application/quote"
	"github.com/revoa/backend/internal/infrastructure/config"
	"github.com/revoa/backend/internal/infrastructure/event"
	"github.com/revoa/backend/internal/infrastructure/logger"
	"github.com/revoa/backend/internal/infrastructure/persistence"
	"github.com/revoa/backend/internal/infrastructure/shopify"
	"github.com/revoa/backend/internal/interfaces/http/handler"
	"github.com/revoa/backend/internal/interfaces/http/middleware"
	"github.com/revoa/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Revoa Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	quoteRepo := persistence.NewGormQuoteRepository(db.DB)
	mappingRepo := persistence.NewGormVariantMappingRepository(db.DB)

	// In-process event bus with an activity log subscriber
	eventBus := event.NewBus(log)
	eventBus.Subscribe(event.NewActivityLogger(log))

	// Initialize application services
	quoteService := quoteapp.NewQuoteService(quoteRepo, eventBus, log)

	// Shopify integration is optional: without credentials the quote
	// authoring API still works, but reconciliation routes are not
	// registered.
	var syncService *integrationapp.SyncService
	if cfg.Shopify.ShopDomain != "" {
		shopifyCfg := shopify.NewConfig(cfg.Shopify.ShopDomain, cfg.Shopify.AccessToken)
		shopifyCfg.APIVersion = cfg.Shopify.APIVersion
		shopifyCfg.TimeoutSeconds = cfg.Shopify.TimeoutSeconds

		adapter, err := shopify.NewAdapter(shopifyCfg)
		if err != nil {
			log.Fatal("Failed to initialize Shopify adapter", zap.Error(err))
		}
		syncService = integrationapp.NewSyncService(quoteRepo, mappingRepo, adapter, adapter, eventBus, log)
		log.Info("Shopify integration configured",
			zap.String("shop_domain", cfg.Shopify.ShopDomain),
			zap.String("api_version", cfg.Shopify.APIVersion),
		)
	} else {
		log.Warn("Shopify integration not configured; reconciliation routes disabled")
	}

	// Initialize HTTP handlers
	quoteHandler := handler.NewQuoteHandler(quoteService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Quote authoring routes
	quoteRoutes := router.NewDomainGroup("quotes", "/quotes")
	quoteRoutes.POST("", quoteHandler.Create)
	quoteRoutes.GET("", quoteHandler.List)
	quoteRoutes.POST("/combinations/preview", quoteHandler.PreviewCombinations)
	quoteRoutes.POST("/pricing/suggest", quoteHandler.SuggestPrice)
	quoteRoutes.POST("/shipping/evaluate", quoteHandler.EvaluateShipping)
	quoteRoutes.GET("/:id", quoteHandler.GetByID)
	quoteRoutes.DELETE("/:id", quoteHandler.Delete)
	quoteRoutes.PUT("/:id/variants", quoteHandler.ReplaceVariants)

	// Reconciliation routes, only when a storefront is connected
	if syncService != nil {
		syncHandler := handler.NewSyncHandler(syncService)
		quoteRoutes.POST("/:id/sync/reconcile", syncHandler.Reconcile)
		quoteRoutes.POST("/:id/sync/commit", syncHandler.Commit)
		quoteRoutes.GET("/:id/mappings", syncHandler.ListMappings)
	}

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(quoteRoutes).
		Register(systemRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
