package insights

import (
	"context"
	"fmt"
	"luxeCartAI/domain"
	"luxeCartAI/pkg/logger"
	"sort"
	"time"
)

const (
	maxTrendingCategories = 3
	maxHighDemand         = 2
)

// CatalogRepository contract interface
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type insightsService struct {
	catalogRepo CatalogRepository
}

func NewInsightsService(catalogRepo CatalogRepository) *insightsService {
	return &insightsService{
		catalogRepo: catalogRepo,
	}
}

// GetInsights derives a merchandising summary from the catalog snapshot:
// trending categories by product count, discount suggestions for the top
// categories and the priciest products flagged as high demand.
func (s *insightsService) GetInsights(ctx context.Context) (domain.Insights, error) {
	if err := ctx.Err(); err != nil {
		return domain.Insights{}, fmt.Errorf("context error: %w", err)
	}

	products, err := s.catalogRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to load catalog for insights", err)
		return domain.Insights{}, fmt.Errorf("load catalog: %w", err)
	}

	trending := trendingCategories(products)

	discountRates := []int{15, 10}
	discounts := make([]string, 0, len(discountRates))
	for i, category := range trending {
		if i >= len(discountRates) {
			break
		}
		discounts = append(discounts, fmt.Sprintf("%s: %d%%", category, discountRates[i]))
	}

	byPrice := make([]domain.Product, len(products))
	copy(byPrice, products)
	sort.SliceStable(byPrice, func(i, j int) bool {
		return byPrice[i].Price > byPrice[j].Price
	})

	highDemand := make([]string, 0, maxHighDemand)
	for i := 0; i < len(byPrice) && i < maxHighDemand; i++ {
		highDemand = append(highDemand, byPrice[i].Name)
	}

	alerts := []domain.InventoryAlert{}
	if len(byPrice) > 0 {
		cheapest := byPrice[len(byPrice)-1]
		alerts = append(alerts, domain.InventoryAlert{
			Product:         cheapest.Name,
			Status:          "low_stock",
			SuggestedAction: "Restock",
		})
	}

	return domain.Insights{
		TrendingCategories: trending,
		PriceOptimization: domain.PriceOptimization{
			SuggestedDiscounts: discounts,
			HighDemandProducts: highDemand,
		},
		InventoryAlerts: alerts,
		GeneratedAt:     time.Now().Format(time.RFC3339),
	}, nil
}

// trendingCategories orders categories by product count, catalog order
// breaking ties.
func trendingCategories(products []domain.Product) []string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, p := range products {
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxTrendingCategories {
		order = order[:maxTrendingCategories]
	}

	return order
}
