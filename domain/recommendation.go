package domain

// RecommendationQuery carries a user's interaction trail. Only set
// membership matters; ordering of the history lists is not significant.
type RecommendationQuery struct {
	ProductHistory  []string
	BrowsingHistory []string
	Limit           int
}

// RecommendedProduct is a catalog product plus its match score and the
// reason it was picked. Product is embedded so the JSON body is the
// product fields together with match_score and match_reason.
type RecommendedProduct struct {
	Product
	MatchScore  int    `json:"match_score"`
	MatchReason string `json:"match_reason"`
}

// SimilarProduct is a catalog product plus its similarity score against
// the reference product of the query.
type SimilarProduct struct {
	Product
	SimilarityScore int `json:"similarity_score"`
}

// RecommendationResult is the full outcome of a recommendation query.
// ConfidenceScore is an auxiliary value reported alongside the ranking;
// it is not derived from the candidate scores.
type RecommendationResult struct {
	Recommendations  []RecommendedProduct `json:"recommendations"`
	ConfidenceScore  float64              `json:"confidence_score"`
	AlgorithmVersion string               `json:"algorithm_version"`
}
