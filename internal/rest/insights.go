package rest

import (
	"context"
	"luxeCartAI/domain"
	"luxeCartAI/pkg/logger"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type InsightsService interface {
	GetInsights(ctx context.Context) (domain.Insights, error)
}

type InsightsHandler struct {
	insightsService InsightsService
	timeout         time.Duration
}

func NewInsightsHandler(insightsService InsightsService) *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightsService,
		timeout:         10 * time.Second,
	}
}

func (h *InsightsHandler) GetInsights(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	insights, err := h.insightsService.GetInsights(ctx)
	if err != nil {
		logger.Error("Failed to compute insights", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, insights)
}
