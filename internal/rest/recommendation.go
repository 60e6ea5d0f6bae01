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

type RecommendationService interface {
	Recommend(ctx context.Context, query domain.RecommendationQuery) (domain.RecommendationResult, error)
}

type RecommendationHandler struct {
	recommendationService RecommendationService
	validator             *validator.Validate
	timeout               time.Duration
}

func NewRecommendationHandler(recommendationService RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		validator:             validator.New(),
		timeout:               10 * time.Second,
	}
}

type RecommendationRequest struct {
	UserID          string   `json:"user_id"`
	ProductHistory  []string `json:"product_history"`
	BrowsingHistory []string `json:"browsing_history"`
	Limit           int      `json:"limit" validate:"gte=0"`
}

func (h *RecommendationHandler) GetRecommendations(c echo.Context) error {
	start := time.Now()

	var req RecommendationRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind recommendation request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate recommendation request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if req.Limit <= 0 {
		req.Limit = 4
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.recommendationService.Recommend(ctx, domain.RecommendationQuery{
		ProductHistory:  req.ProductHistory,
		BrowsingHistory: req.BrowsingHistory,
		Limit:           req.Limit,
	})
	if err != nil {
		logger.Error("Failed to compute recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendDuration.Observe(time.Since(start).Seconds())
	metrics.RecommendTotal.Inc()

	return c.JSON(http.StatusOK, result)
}
