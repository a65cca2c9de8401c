package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SetupPrometheus creates a registry with the build info, runtime and process collectors,
// plus any additional ones (e.g. the db pool collector).
func SetupPrometheus(additional ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if len(additional) > 0 {
		promRegistry.MustRegister(additional...)
	}

	return promRegistry
}

// CacheStats is implemented by the in-memory caches exposed on /metrics.
type CacheStats interface {
	EntryCount() int64
	HitRate() float64
}

// RegisterCacheGauges exposes entry count and hit rate of a named cache, read on every scrape.
func RegisterCacheGauges(reg prometheus.Registerer, namespace, cacheName string, stats CacheStats) {
	factory := promauto.With(reg)
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   "cache",
		Name:        "entries",
		Help:        "Number of entries currently in the cache.",
		ConstLabels: prometheus.Labels{"cache": cacheName},
	}, func() float64 {
		return float64(stats.EntryCount())
	})
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   "cache",
		Name:        "hit_rate",
		Help:        "Ratio of cache hits to lookups.",
		ConstLabels: prometheus.Labels{"cache": cacheName},
	}, stats.HitRate)
}
