package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	SecurityEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSecurityEvents,
			Help: HelpTextSecurityEvents,
		},
		[]string{LabelKind},
	)
)

// Business Metrics
var (
	RecipesWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipesWritten,
			Help: HelpTextRecipesWritten,
		},
		[]string{LabelOperation},
	)

	RecipeRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipeRejections,
			Help: HelpTextRecipeRejections,
		},
		[]string{LabelReason},
	)

	LedgerOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLedgerOperations,
			Help: HelpTextLedgerOperations,
		},
		[]string{LabelSet, LabelOperation, LabelResult},
	)

	FollowOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFollowOperations,
			Help: HelpTextFollowOperations,
		},
		[]string{LabelOperation, LabelResult},
	)

	ShoppingListsBuilt = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameShoppingListsBuilt,
			Help: HelpTextShoppingListsBuilt,
		},
	)

	ShoppingListLines = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameShoppingListLines,
			Help:    HelpTextShoppingListLines,
			Buckets: ShoppingListLineBuckets,
		},
	)
)
