package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counts how many comment batches have been analyzed in total.
var BatchesAnalyzed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "spamwatch_batches_analyzed_total",
	Help: "Total number of comment batches analyzed",
})

// Counts how many individual comments went through the pipeline.
var CommentsProcessed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "spamwatch_comments_processed_total",
	Help: "Total number of comments processed",
})

// Counts campaigns that met the spam threshold.
var CampaignsDetected = promauto.NewCounter(prometheus.CounterOpts{
	Name: "spamwatch_campaigns_detected_total",
	Help: "Total number of spam campaigns detected",
})

// Counts clusters suppressed by the whitelist predicate.
var WhitelistSuppressions = promauto.NewCounter(prometheus.CounterOpts{
	Name: "spamwatch_whitelist_suppressions_total",
	Help: "Total number of clusters suppressed by the whitelist predicate",
})

// Counts batches skipped because an identical batch was already analyzed.
var DuplicateBatchesSkipped = promauto.NewCounter(prometheus.CounterOpts{
	Name: "spamwatch_duplicate_batches_skipped_total",
	Help: "Total number of batches skipped as exact duplicates",
})

// Measures end-to-end batch analysis time.
var AnalysisLatency = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "spamwatch_analysis_latency_seconds",
	Help:    "Time taken to analyze one comment batch",
	Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // from 1ms to ~4s
})

// Distribution of final campaign scores.
var CampaignScoreHistogram = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "spamwatch_campaign_score",
	Help:    "Final score of detected spam campaigns",
	Buckets: []float64{50, 60, 70, 80, 90, 100},
})

// Report indexing metrics
var (
	ReportsIndexed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spamwatch_reports_indexed_total",
		Help: "Total number of campaign reports flushed to Elasticsearch",
	})

	ReportFlushes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spamwatch_report_flushes_total",
		Help: "Total number of bulk report flushes",
	})

	ReportFlushFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spamwatch_report_flush_failures_total",
		Help: "Total number of bulk report flushes that failed",
	})

	LanguageDetectionFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spamwatch_language_detection_failures_total",
		Help: "Total number of sample texts whose language could not be detected",
	})

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "spamwatch_circuit_breaker_state",
			Help: "Current state of circuit breakers (0=closed, 1=half-open, 2=open)",
		},
		[]string{"service"},
	)
)
