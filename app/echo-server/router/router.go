package router

import (
	"luxeCartAI/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	api.POST("/recommendations", handler.GetRecommendations)
}

func SetupSimilarityRoutes(api *echo.Group, handler *rest.SimilarityHandler) {
	api.POST("/similar-products", handler.GetSimilarProducts)
}

func SetupCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
}

func SetInsightsRoutes(api *echo.Group, handler *rest.InsightsHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	api.GET("/insights", handler.GetInsights, authRequired, adminOnly)
}

func SetupHealthRoutes(e *echo.Echo, handler *rest.HealthHandler) {
	e.GET("/health", handler.Health)
}
