package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusExporter exports metrics to Prometheus format.
type PrometheusExporter struct {
	collector *Collector
	gatherer  prometheus.Gatherer

	cacheHitRate     prometheus.Gauge
	cacheKeys        prometheus.Gauge
	cacheMemoryBytes prometheus.Gauge
	grpcRequests     *prometheus.CounterVec
	grpcDuration     *prometheus.HistogramVec
}

// NewPrometheusExporter creates an exporter registered on its own registry
// together with the Go runtime and process collectors.
func NewPrometheusExporter(collector *Collector) *PrometheusExporter {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return newPrometheusExporter(collector, reg, reg)
}

func newPrometheusExporter(collector *Collector, reg prometheus.Registerer, gatherer prometheus.Gatherer) *PrometheusExporter {
	factory := promauto.With(reg)

	cacheValue := func(read func(*CacheMetrics) float64) func() float64 {
		return func() float64 {
			return read(collector.GetCacheMetrics())
		}
	}
	factory.NewCounterFunc(prometheus.CounterOpts{
		Name: "prodattr_list_cache_hits_total",
		Help: "Total number of enabled attribute list cache hits",
	}, cacheValue(func(m *CacheMetrics) float64 { return float64(m.Hits) }))
	factory.NewCounterFunc(prometheus.CounterOpts{
		Name: "prodattr_list_cache_misses_total",
		Help: "Total number of enabled attribute list cache misses",
	}, cacheValue(func(m *CacheMetrics) float64 { return float64(m.Misses) }))
	factory.NewCounterFunc(prometheus.CounterOpts{
		Name: "prodattr_list_cache_evictions_total",
		Help: "Total number of cache evictions due to memory limits",
	}, cacheValue(func(m *CacheMetrics) float64 { return float64(m.Evictions) }))

	return &PrometheusExporter{
		collector: collector,
		gatherer:  gatherer,
		cacheHitRate: factory.NewGauge(prometheus.GaugeOpts{
			Name: "prodattr_list_cache_hit_rate",
			Help: "Current cache hit rate (0.0 to 1.0)",
		}),
		cacheKeys: factory.NewGauge(prometheus.GaugeOpts{
			Name: "prodattr_list_cache_keys_current",
			Help: "Current number of keys in the local list cache",
		}),
		cacheMemoryBytes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "prodattr_list_cache_memory_bytes",
			Help: "Current estimated memory usage of the local list cache in bytes",
		}),
		grpcRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prodattr_grpc_requests_total",
				Help: "Total number of gRPC requests by method and status code",
			},
			[]string{"method", "code"},
		),
		grpcDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "prodattr_grpc_request_duration_seconds",
				Help:    "Duration of gRPC requests in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
			},
			[]string{"method"},
		),
	}
}

// Update refreshes the cache gauges from the collector.
func (e *PrometheusExporter) Update() {
	cacheMetrics := e.collector.GetCacheMetrics()
	e.cacheHitRate.Set(cacheMetrics.HitRate)
	e.cacheKeys.Set(float64(cacheMetrics.KeysCurrent))
	e.cacheMemoryBytes.Set(float64(cacheMetrics.MemoryBytes))
}

// RunUpdater calls Update every interval until ctx is done.
func (e *PrometheusExporter) RunUpdater(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		e.Update()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RecordRequest records one finished request.
func (e *PrometheusExporter) RecordRequest(method, code string, durationSeconds float64) {
	e.grpcRequests.WithLabelValues(method, code).Inc()
	e.grpcDuration.WithLabelValues(method).Observe(durationSeconds)
}

// Handler serves the registry in the Prometheus text format.
func (e *PrometheusExporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.gatherer, promhttp.HandlerOpts{})
}

// NewHTTPServer returns a server exposing /metrics on addr.
func (e *PrometheusExporter) NewHTTPServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", e.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
