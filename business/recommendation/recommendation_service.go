package recommendation

import (
	"context"
	"fmt"
	"luxeCartAI/domain"
	"luxeCartAI/pkg/logger"
	"sort"
)

// AlgorithmVersion is reported with every recommendation response.
const AlgorithmVersion = "1.0.0"

const (
	defaultLimit = 4

	// Match score ranges. Primary candidates come from the user's interest
	// categories, backfill candidates are generic trending picks.
	primaryScoreMin  = 85
	primaryScoreMax  = 98
	backfillScoreMin = 70
	backfillScoreMax = 84

	backfillReason = "Trending now"

	confidenceMin = 0.85
	confidenceMax = 0.98
)

// CatalogRepository contract interface
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type recommendationService struct {
	catalogRepo CatalogRepository
	scores      ScoreSource
}

func NewRecommendationService(catalogRepo CatalogRepository, scores ScoreSource) *recommendationService {
	if scores == nil {
		scores = globalRand{}
	}

	return &recommendationService{
		catalogRepo: catalogRepo,
		scores:      scores,
	}
}

// Recommend ranks catalog products against the user's interaction history.
// Products sharing a category with the history get a high match score,
// and the list is padded with trending items when category matches alone
// cannot fill the requested limit. History products never come back.
func (s *recommendationService) Recommend(ctx context.Context, query domain.RecommendationQuery) (domain.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("context error: %w", err)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	products, err := s.catalogRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to load catalog for recommendations", err)
		return domain.RecommendationResult{}, fmt.Errorf("load catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(query.ProductHistory)+len(query.BrowsingHistory))
	for _, id := range query.ProductHistory {
		seen[id] = struct{}{}
	}
	for _, id := range query.BrowsingHistory {
		seen[id] = struct{}{}
	}

	// Interest categories are the categories of products the user already
	// interacted with.
	interest := make(map[string]struct{})
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			interest[p.Category] = struct{}{}
		}
	}

	recommended := make([]domain.RecommendedProduct, 0, limit)
	picked := make(map[string]struct{}, limit)

	for _, p := range products {
		if _, excluded := seen[p.ID]; excluded {
			continue
		}
		if _, match := interest[p.Category]; !match {
			continue
		}

		recommended = append(recommended, domain.RecommendedProduct{
			Product:     p,
			MatchScore:  s.scoreBetween(primaryScoreMin, primaryScoreMax),
			MatchReason: fmt.Sprintf("Based on your interest in %s", p.Category),
		})
		picked[p.ID] = struct{}{}
	}

	// Backfill with trending items, in catalog order, until the limit is
	// reached or the catalog runs out.
	if len(recommended) < limit {
		for _, p := range products {
			if len(recommended) >= limit {
				break
			}
			if _, excluded := seen[p.ID]; excluded {
				continue
			}
			if _, already := picked[p.ID]; already {
				continue
			}

			recommended = append(recommended, domain.RecommendedProduct{
				Product:     p,
				MatchScore:  s.scoreBetween(backfillScoreMin, backfillScoreMax),
				MatchReason: backfillReason,
			})
			picked[p.ID] = struct{}{}
		}
	}

	// Stable sort so equal scores keep their insertion (catalog) order.
	sort.SliceStable(recommended, func(i, j int) bool {
		return recommended[i].MatchScore > recommended[j].MatchScore
	})
	if len(recommended) > limit {
		recommended = recommended[:limit]
	}

	confidence := confidenceMin + s.scores.Float64()*(confidenceMax-confidenceMin)

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommendations computed",
		"trace_id", tid,
		"history_size", len(seen),
		"interest_categories", len(interest),
		"returned", len(recommended),
		"confidence", confidence,
	)

	return domain.RecommendationResult{
		Recommendations:  recommended,
		ConfidenceScore:  confidence,
		AlgorithmVersion: AlgorithmVersion,
	}, nil
}

// scoreBetween draws an integer from [lo, hi] inclusive.
func (s *recommendationService) scoreBetween(lo, hi int) int {
	return lo + s.scores.Intn(hi-lo+1)
}
