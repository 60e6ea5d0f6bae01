package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"luxeCartAI/domain"
	"os"
)

// CatalogRepository serves a read-only product catalog from memory.
// The slice keeps the load order, which the recommenders rely on for
// backfill and tie-break semantics; the map gives O(1) id lookup.
type CatalogRepository struct {
	products []domain.Product
	byID     map[string]int
}

func NewCatalogRepository(products []domain.Product) (*CatalogRepository, error) {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog product at index %d has empty id", i)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q in catalog", p.ID)
		}
		byID[p.ID] = i
	}

	return &CatalogRepository{
		products: products,
		byID:     byID,
	}, nil
}

// LoadFromFile builds a repository from a JSON catalog file. The file is
// read once at startup; the repository never touches it again.
func LoadFromFile(path string) (*CatalogRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	return NewCatalogRepository(products)
}

func (r *CatalogRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return r.products, nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	idx, ok := r.byID[id]
	if !ok {
		return domain.Product{}, errors.New("product not found")
	}

	return r.products[idx], nil
}

func (r *CatalogRepository) Count() int {
	return len(r.products)
}
