package domain

// Product is a single catalog entry. The catalog is loaded once at startup
// and never mutated, so products are safe to share across requests.
// Identity is by ID; the catalog guarantees IDs are unique.
type Product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
