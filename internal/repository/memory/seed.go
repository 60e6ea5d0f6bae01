package memory

import "luxeCartAI/domain"

// SeedCatalog is the default demo catalog used when no catalog file is
// configured. Mirrors the LuxeCart storefront inventory.
func SeedCatalog() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Premium Wireless Headphones", Category: "Electronics", Price: 299, Description: "High-quality wireless headphones with noise cancellation", Tags: []string{"audio", "wireless", "premium"}},
		{ID: "2", Name: "Luxury Leather Watch", Category: "Accessories", Price: 599, Description: "Handcrafted leather watch with Swiss movement", Tags: []string{"watch", "luxury", "leather"}},
		{ID: "3", Name: "Designer Sunglasses", Category: "Accessories", Price: 249, Description: "UV protection sunglasses with polarized lenses", Tags: []string{"sunglasses", "designer", "fashion"}},
		{ID: "4", Name: "Smart Home Hub", Category: "Electronics", Price: 199, Description: "Central hub for all your smart home devices", Tags: []string{"smart home", "automation", "tech"}},
		{ID: "5", Name: "Minimalist Desk Lamp", Category: "Home & Living", Price: 129, Description: "Adjustable LED desk lamp with wireless charging", Tags: []string{"lamp", "office", "minimalist"}},
		{ID: "6", Name: "Leather Messenger Bag", Category: "Fashion", Price: 349, Description: "Premium leather bag for professionals", Tags: []string{"bag", "leather", "professional"}},
	}
}
