package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ratebank"

// Metrics is safe to use as a nil pointer; every recorder is then a no-op.
type Metrics struct {
	CacheHitsTotal      *prometheus.CounterVec
	CacheMissesTotal    *prometheus.CounterVec
	UpstreamFetchTotal  *prometheus.CounterVec
	StaleFallbacksTotal prometheus.Counter
	FlushesTotal        *prometheus.CounterVec
	CachedRates         *prometheus.GaugeVec
}

// New registers the collectors on reg. Use prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CacheHitsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_hits_total",
				Help:      "Rate lookups answered from the cache",
			},
			[]string{"policy"},
		),
		CacheMissesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_misses_total",
				Help:      "Rate lookups that needed an upstream fetch (absent or stale)",
			},
			[]string{"policy"},
		),
		UpstreamFetchTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_fetch_total",
				Help:      "Upstream rate requests by outcome",
			},
			[]string{"result"},
		),
		StaleFallbacksTotal: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stale_fallbacks_total",
				Help:      "Failed fetches masked by a previously cached rate",
			},
		),
		FlushesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "flushes_total",
				Help:      "Cache flushes by kind (rate, all, expiry)",
			},
			[]string{"kind"},
		),
		CachedRates: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "cached_rates",
				Help:      "Entries currently held per policy",
			},
			[]string{"policy"},
		),
	}
}

func (m *Metrics) Hit(policy string) {
	if m == nil {
		return
	}
	m.CacheHitsTotal.WithLabelValues(policy).Inc()
}

func (m *Metrics) Miss(policy string) {
	if m == nil {
		return
	}
	m.CacheMissesTotal.WithLabelValues(policy).Inc()
}

func (m *Metrics) Fetch(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.UpstreamFetchTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) StaleFallback() {
	if m == nil {
		return
	}
	m.StaleFallbacksTotal.Inc()
}

func (m *Metrics) Flush(kind string) {
	if m == nil {
		return
	}
	m.FlushesTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) Size(policy string, n int) {
	if m == nil {
		return
	}
	m.CachedRates.WithLabelValues(policy).Set(float64(n))
}
