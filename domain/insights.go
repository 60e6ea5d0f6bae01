package domain

type PriceOptimization struct {
	SuggestedDiscounts []string `json:"suggested_discounts"`
	HighDemandProducts []string `json:"high_demand_products"`
}

type InventoryAlert struct {
	Product         string `json:"product"`
	Status          string `json:"status"`
	SuggestedAction string `json:"suggested_action"`
}

type Insights struct {
	TrendingCategories []string          `json:"trending_categories"`
	PriceOptimization  PriceOptimization `json:"price_optimization"`
	InventoryAlerts    []InventoryAlert  `json:"inventory_alerts"`
	GeneratedAt        string            `json:"generated_at"`
}
