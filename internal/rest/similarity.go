package rest

import (
	"context"
	"luxeCartAI/domain"
	"luxeCartAI/pkg/logger"
	"luxeCartAI/pkg/metrics"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type SimilarityService interface {
	SimilarProducts(ctx context.Context, productID string, limit int) ([]domain.SimilarProduct, error)
}

type SimilarityHandler struct {
	similarityService SimilarityService
	validator         *validator.Validate
	timeout           time.Duration
}

func NewSimilarityHandler(similarityService SimilarityService) *SimilarityHandler {
	return &SimilarityHandler{
		similarityService: similarityService,
		validator:         validator.New(),
		timeout:           10 * time.Second,
	}
}

type SimilarProductsRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Limit     int    `json:"limit" validate:"gte=0"`
}

type SimilarProductsResponse struct {
	SimilarProducts []domain.SimilarProduct `json:"similar_products"`
}

func (h *SimilarityHandler) GetSimilarProducts(c echo.Context) error {
	start := time.Now()

	var req SimilarProductsRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind similar products request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate similar products request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if req.Limit <= 0 {
		req.Limit = 4
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	similar, err := h.similarityService.SimilarProducts(ctx, req.ProductID, req.Limit)
	if err != nil {
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to compute similar products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.SimilarDuration.Observe(time.Since(start).Seconds())
	metrics.SimilarTotal.Inc()

	return c.JSON(http.StatusOK, SimilarProductsResponse{SimilarProducts: similar})
}
