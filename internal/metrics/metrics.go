package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RoundsGenerated counts successfully started rounds by category.
	RoundsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "imposter_rounds_generated_total",
		Help: "Rounds started, labeled by the generated category.",
	}, []string{"category"})

	// ContentFallbacks counts rounds that fell back to the sentinel
	// content because the generation provider failed.
	ContentFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "imposter_content_fallbacks_total",
		Help: "Rounds served with fallback content after a provider failure.",
	})

	// DiscussionDuration tracks how long groups discuss before revealing.
	DiscussionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "imposter_discussion_duration_seconds",
		Help:    "Wall-clock discussion time per round.",
		Buckets: prometheus.ExponentialBuckets(15, 2, 9),
	})
)
