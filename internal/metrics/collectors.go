package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CacheStatsFunc reports cumulative hits and misses and the current entry count
type CacheStatsFunc func() (hits, misses uint64, entries int)

// PoolStatsFunc reports the number of acquired database connections
type PoolStatsFunc func() int32

// RegisterCatalogCache exposes the catalog cache counters on reg
func RegisterCatalogCache(reg prometheus.Registerer, stats CacheStatsFunc) error {
	collectors := []prometheus.Collector{
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: MetricNameCatalogCacheHits,
			Help: HelpTextCatalogCacheHits,
		}, func() float64 {
			hits, _, _ := stats()
			return float64(hits)
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: MetricNameCatalogCacheMisses,
			Help: HelpTextCatalogCacheMisses,
		}, func() float64 {
			_, misses, _ := stats()
			return float64(misses)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: MetricNameCatalogCacheEntries,
			Help: HelpTextCatalogCacheEntries,
		}, func() float64 {
			_, _, entries := stats()
			return float64(entries)
		}),
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// RegisterDatabasePool exposes connection pool usage on reg
func RegisterDatabasePool(reg prometheus.Registerer, stats PoolStatsFunc) error {
	return reg.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: MetricNameDatabaseAcquiredConns,
		Help: HelpTextDatabaseAcquiredConns,
	}, func() float64 {
		return float64(stats())
	}))
}

// RecipeWritten counts a successful recipe create, update or delete
func RecipeWritten(operation string) {
	RecipesWritten.WithLabelValues(operation).Inc()
}

// RecipeRejected counts a draft rejected for reason
func RecipeRejected(reason string) {
	RecipeRejections.WithLabelValues(reason).Inc()
}

// LedgerChanged counts a favorite or cart operation with its outcome
func LedgerChanged(set, operation string, err error) {
	LedgerOperations.WithLabelValues(set, operation, result(err)).Inc()
}

// FollowChanged counts a follow or unfollow with its outcome
func FollowChanged(operation string, err error) {
	FollowOperations.WithLabelValues(operation, result(err)).Inc()
}

// ShoppingListBuilt records the size of a built list
func ShoppingListBuilt(lines int) {
	ShoppingListsBuilt.Inc()
	ShoppingListLines.Observe(float64(lines))
}

func result(err error) string {
	if err != nil {
		return ResultRejected
	}
	return ResultOK
}
