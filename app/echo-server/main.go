package main

import (
	"context"
	"fmt"
	"log"
	"luxeCartAI/app/echo-server/router"
	"luxeCartAI/business/catalog"
	"luxeCartAI/business/insights"
	"luxeCartAI/business/recommendation"
	"luxeCartAI/business/similarity"
	"luxeCartAI/internal/middleware"
	"luxeCartAI/internal/repository/memory"
	"luxeCartAI/internal/rest"
	"luxeCartAI/pkg/config"
	"luxeCartAI/pkg/logger"
	"luxeCartAI/pkg/metrics"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting LuxeCart AI Service", "version", cfg.App.Version)

	// Catalog is loaded once and shared read-only across requests
	catalogRepo, err := loadCatalog(cfg)
	if err != nil {
		logger.Fatal("Failed to load catalog", "error", err)
	}

	logger.Info("Catalog loaded", "products", catalogRepo.Count())

	metrics.Init()

	// Init service
	recommendationService := recommendation.NewRecommendationService(catalogRepo, nil)
	similarityService := similarity.NewSimilarityService(catalogRepo)
	catalogService := catalog.NewCatalogService(catalogRepo)
	insightsService := insights.NewInsightsService(catalogRepo)

	// Init handler
	recommendationHandler := rest.NewRecommendationHandler(recommendationService)
	similarityHandler := rest.NewSimilarityHandler(similarityService)
	catalogHandler := rest.NewCatalogHandler(catalogService)
	insightsHandler := rest.NewInsightsHandler(insightsService)
	healthHandler := rest.NewHealthHandler("ai-recommendations")

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupRecommendationRoutes(api, recommendationHandler)
	router.SetupSimilarityRoutes(api, similarityHandler)
	router.SetupCatalogRoutes(api, catalogHandler)
	router.SetInsightsRoutes(api, insightsHandler, authRequired, adminOnly)
	router.SetupHealthRoutes(e, healthHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

func loadCatalog(cfg *config.Config) (*memory.CatalogRepository, error) {
	if cfg.Catalog.Path != "" {
		return memory.LoadFromFile(cfg.Catalog.Path)
	}

	return memory.NewCatalogRepository(memory.SeedCatalog())
}
