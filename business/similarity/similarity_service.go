package similarity

import (
	"context"
	"errors"
	"fmt"
	"luxeCartAI/domain"
	"luxeCartAI/pkg/logger"
	"math"
	"sort"
)

const (
	defaultLimit = 4

	// Score weights. Category identity dominates, price proximity decays
	// linearly inside a 50% band, and each shared tag adds a fixed bonus.
	categoryWeight = 40.0
	priceWeight    = 30.0
	priceBand      = 0.5
	tagWeight      = 10.0

	maxScore    = 100
	scoreCutoff = 20
)

// CatalogRepository contract interface
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (domain.Product, error)
}

type similarityService struct {
	catalogRepo CatalogRepository
}

func NewSimilarityService(catalogRepo CatalogRepository) *similarityService {
	return &similarityService{
		catalogRepo: catalogRepo,
	}
}

// SimilarProducts scores every other catalog product against the reference
// product and returns the strongest matches. Scoring is deterministic:
// the same catalog and query always produce the same ranking.
func (s *similarityService) SimilarProducts(ctx context.Context, productID string, limit int) ([]domain.SimilarProduct, error) {
	if productID == "" {
		logger.Error("invalid product id for similarity query")
		return nil, errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = defaultLimit
	}

	reference, err := s.catalogRepo.FindByID(ctx, productID)
	if err != nil {
		logger.Error("failed to find reference product", err.Error())
		return nil, err
	}

	products, err := s.catalogRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to load catalog for similarity ranking", err)
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	similar := make([]domain.SimilarProduct, 0, limit)
	for _, p := range products {
		if p.ID == reference.ID {
			continue
		}

		score := similarityScore(reference, p)
		if score > scoreCutoff {
			similar = append(similar, domain.SimilarProduct{
				Product:         p,
				SimilarityScore: score,
			})
		}
	}

	// Stable sort keeps catalog order among equal scores.
	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].SimilarityScore > similar[j].SimilarityScore
	})
	if len(similar) > limit {
		similar = similar[:limit]
	}

	logger.Debug("similar products computed",
		"product_id", productID,
		"returned", len(similar),
	)

	return similar, nil
}

// similarityScore combines category match, price proximity and tag overlap
// into a single 0-100 integer.
func similarityScore(reference, candidate domain.Product) int {
	score := 0.0

	if candidate.Category == reference.Category {
		score += categoryWeight
	}

	if reference.Price > 0 {
		ratio := math.Abs(candidate.Price-reference.Price) / reference.Price
		if ratio < priceBand {
			score += priceWeight * (1 - ratio)
		}
	}

	score += float64(commonTagCount(reference.Tags, candidate.Tags)) * tagWeight

	if score > maxScore {
		score = maxScore
	}

	return int(score)
}

func commonTagCount(a, b []string) int {
	set := make(map[string]struct{}, len(a))
	for _, tag := range a {
		set[tag] = struct{}{}
	}

	count := 0
	for _, tag := range b {
		if _, ok := set[tag]; ok {
			count++
		}
	}

	return count
}
