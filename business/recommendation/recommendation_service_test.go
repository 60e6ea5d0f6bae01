//go:build !integration

package recommendation

import (
	"context"
	"luxeCartAI/domain"
	"testing"
)

type fakeCatalogRepo struct {
	products []domain.Product
}

func (f *fakeCatalogRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	return f.products, nil
}

// fixedScoreSource replays a fixed Intn sequence and a fixed Float64 so
// ranking assertions stay deterministic.
type fixedScoreSource struct {
	ints  []int
	idx   int
	float float64
}

func (f *fixedScoreSource) Intn(n int) int {
	v := 0
	if len(f.ints) > 0 {
		v = f.ints[f.idx%len(f.ints)]
		f.idx++
	}
	return v % n
}

func (f *fixedScoreSource) Float64() float64 {
	return f.float
}

func testCatalog() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Premium Wireless Headphones", Category: "Electronics", Price: 299, Tags: []string{"audio", "wireless", "premium"}},
		{ID: "2", Name: "Luxury Leather Watch", Category: "Accessories", Price: 599, Tags: []string{"watch", "luxury", "leather"}},
		{ID: "3", Name: "Designer Sunglasses", Category: "Accessories", Price: 249, Tags: []string{"sunglasses", "designer", "fashion"}},
		{ID: "4", Name: "Smart Home Hub", Category: "Electronics", Price: 199, Tags: []string{"smart home", "automation", "tech"}},
		{ID: "5", Name: "Minimalist Desk Lamp", Category: "Home & Living", Price: 129, Tags: []string{"lamp", "office", "minimalist"}},
		{ID: "6", Name: "Leather Messenger Bag", Category: "Fashion", Price: 349, Tags: []string{"bag", "leather", "professional"}},
	}
}

func TestRecommendEmptyHistoryReturnsTrendingInCatalogOrder(t *testing.T) {
	repo := &fakeCatalogRepo{products: testCatalog()}
	// Intn always 0: every backfill score is 70, so the stable sort must
	// preserve catalog order.
	svc := NewRecommendationService(repo, &fixedScoreSource{ints: []int{0}, float: 0.5})

	result, err := svc.Recommend(context.Background(), domain.RecommendationQuery{Limit: 4})
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}

	if len(result.Recommendations) != 4 {
		t.Fatalf("expected 4 recommendations, got %d", len(result.Recommendations))
	}

	wantOrder := []string{"1", "2", "3", "4"}
	for i, rec := range result.Recommendations {
		if rec.ID != wantOrder[i] {
			t.Errorf("position %d: expected product %s, got %s", i, wantOrder[i], rec.ID)
		}
		if rec.MatchReason != "Trending now" {
			t.Errorf("product %s: expected trending reason, got %q", rec.ID, rec.MatchReason)
		}
		if rec.MatchScore < 70 || rec.MatchScore > 84 {
			t.Errorf("product %s: backfill score %d outside [70,84]", rec.ID, rec.MatchScore)
		}
	}
}

func TestRecommendPrimaryFromInterestCategories(t *testing.T) {
	repo := &fakeCatalogRepo{products: testCatalog()}
	svc := NewRecommendationService(repo, &fixedScoreSource{ints: []int{3}, float: 0.5})

	result, err := svc.Recommend(context.Background(), domain.RecommendationQuery{
		ProductHistory: []string{"1"},
		Limit:          4,
	})
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}

	if len(result.Recommendations) != 4 {
		t.Fatalf("expected 4 recommendations, got %d", len(result.Recommendations))
	}

	// Product 4 is the only other Electronics product, so it is the only
	// primary candidate and must rank first.
	first := result.Recommendations[0]
	if first.ID != "4" {
		t.Fatalf("expected product 4 first, got %s", first.ID)
	}
	if first.MatchScore < 85 || first.MatchScore > 98 {
		t.Errorf("primary score %d outside [85,98]", first.MatchScore)
	}
	if first.MatchReason != "Based on your interest in Electronics" {
		t.Errorf("unexpected primary reason %q", first.MatchReason)
	}

	for _, rec := range result.Recommendations {
		if rec.ID == "1" {
			t.Errorf("history product 1 leaked into recommendations")
		}
		if rec.ID != "4" && rec.MatchReason != "Trending now" {
			t.Errorf("product %s: expected backfill reason, got %q", rec.ID, rec.MatchReason)
		}
	}
}

func TestRecommendNeverReturnsExcludedIDs(t *testing.T) {
	repo := &fakeCatalogRepo{products: testCatalog()}
	svc := NewRecommendationService(repo, &fixedScoreSource{ints: []int{7}, float: 0.1})

	result, err := svc.Recommend(context.Background(), domain.RecommendationQuery{
		ProductHistory:  []string{"1", "3"},
		BrowsingHistory: []string{"5"},
		Limit:           10,
	})
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}

	excluded := map[string]bool{"1": true, "3": true, "5": true}
	for _, rec := range result.Recommendations {
		if excluded[rec.ID] {
			t.Errorf("excluded product %s appeared in output", rec.ID)
		}
	}

	if len(result.Recommendations) != 3 {
		t.Errorf("expected 3 eligible products, got %d", len(result.Recommendations))
	}
}

func TestRecommendSortedByScoreDescending(t *testing.T) {
	repo := &fakeCatalogRepo{products: testCatalog()}
	svc := NewRecommendationService(repo, &fixedScoreSource{ints: []int{9, 2, 11, 5}, float: 0.5})

	result, err := svc.Recommend(context.Background(), domain.RecommendationQuery{
		BrowsingHistory: []string{"2"},
		Limit:           6,
	})
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}

	for i := 1; i < len(result.Recommendations); i++ {
		if result.Recommendations[i].MatchScore > result.Recommendations[i-1].MatchScore {
			t.Errorf("recommendations not sorted: %d before %d",
				result.Recommendations[i-1].MatchScore, result.Recommendations[i].MatchScore)
		}
	}
}

func TestRecommendConfidenceRange(t *testing.T) {
	repo := &fakeCatalogRepo{products: testCatalog()}

	for _, f := range []float64{0, 0.5, 0.999} {
		svc := NewRecommendationService(repo, &fixedScoreSource{ints: []int{0}, float: f})

		result, err := svc.Recommend(context.Background(), domain.RecommendationQuery{Limit: 2})
		if err != nil {
			t.Fatalf("Recommend returned error: %v", err)
		}

		if result.ConfidenceScore < 0.85 || result.ConfidenceScore > 0.98 {
			t.Errorf("confidence %f outside [0.85,0.98]", result.ConfidenceScore)
		}
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	repo := &fakeCatalogRepo{products: nil}
	svc := NewRecommendationService(repo, &fixedScoreSource{ints: []int{0}, float: 0.5})

	result, err := svc.Recommend(context.Background(), domain.RecommendationQuery{
		ProductHistory: []string{"1"},
		Limit:          4,
	})
	if err != nil {
		t.Fatalf("empty catalog should not error: %v", err)
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("expected empty result, got %d entries", len(result.Recommendations))
	}
	if result.AlgorithmVersion != AlgorithmVersion {
		t.Errorf("expected algorithm version %s, got %s", AlgorithmVersion, result.AlgorithmVersion)
	}
}

func TestRecommendDefaultLimit(t *testing.T) {
	repo := &fakeCatalogRepo{products: testCatalog()}
	svc := NewRecommendationService(repo, &fixedScoreSource{ints: []int{0}, float: 0.5})

	result, err := svc.Recommend(context.Background(), domain.RecommendationQuery{})
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}

	if len(result.Recommendations) != 4 {
		t.Errorf("expected default limit of 4, got %d", len(result.Recommendations))
	}
}
