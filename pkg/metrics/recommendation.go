package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendation HTTP handler
	RecommendDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "reco_recommend_latency_seconds",
		Help:    "Latency of the recommendations handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation responses served
	RecommendTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reco_recommend_requests_total",
		Help: "Total number of recommendation requests",
	})

	SimilarDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "reco_similar_products_latency_seconds",
		Help:    "Latency of the similar products handler",
		Buckets: prometheus.DefBuckets,
	})

	SimilarTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reco_similar_products_requests_total",
		Help: "Total number of similar product requests",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendDuration,
		RecommendTotal,
		SimilarDuration,
		SimilarTotal,
	)
}
