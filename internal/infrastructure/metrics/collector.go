package metrics

import (
	"sync"
	"sync/atomic"

	"github.com/asakaida/prodattr/pkg/cache"
)

// CacheSource is any cache exposing hit/miss statistics
type CacheSource interface {
	Metrics() *cache.Metrics
}

// cacheSizer is implemented by caches that know their local footprint
type cacheSizer interface {
	Len() int
	Size() int64
}

// Collector aggregates per-method gRPC statistics and reads cache statistics on demand.
type Collector struct {
	methods sync.Map // method -> *methodStats

	// enabled attribute list cache, optional
	cache CacheSource
}

type methodStats struct {
	requests uint64
	errors   uint64

	mu           sync.Mutex
	totalSeconds float64
}

// CacheMetrics holds cache performance metrics.
type CacheMetrics struct {
	Hits        uint64
	Misses      uint64
	HitRate     float64
	KeysCurrent int64
	MemoryBytes int64
	Evictions   uint64
}

// APIMetrics holds API request metrics keyed by full method name.
type APIMetrics struct {
	RequestCounts        map[string]uint64
	ErrorCounts          map[string]uint64
	TotalDurationSeconds map[string]float64
}

// NewCollector creates a new metrics collector.
func NewCollector() *Collector {
	return &Collector{}
}

// SetCache sets the cache whose statistics are reported.
func (c *Collector) SetCache(source CacheSource) {
	c.cache = source
}

// RecordRequest records an API request.
func (c *Collector) RecordRequest(method string) {
	atomic.AddUint64(&c.stats(method).requests, 1)
}

// RecordError records a failed API request.
func (c *Collector) RecordError(method string) {
	atomic.AddUint64(&c.stats(method).errors, 1)
}

// RecordDuration adds the duration of an API call in seconds.
func (c *Collector) RecordDuration(method string, durationSeconds float64) {
	st := c.stats(method)
	st.mu.Lock()
	st.totalSeconds += durationSeconds
	st.mu.Unlock()
}

func (c *Collector) stats(method string) *methodStats {
	if v, ok := c.methods.Load(method); ok {
		return v.(*methodStats)
	}
	v, _ := c.methods.LoadOrStore(method, &methodStats{})
	return v.(*methodStats)
}

// GetCacheMetrics returns current cache metrics.
// KeysCurrent and MemoryBytes stay zero for caches that do not track them (redis).
func (c *Collector) GetCacheMetrics() *CacheMetrics {
	if c.cache == nil {
		return &CacheMetrics{}
	}

	metrics := c.cache.Metrics()
	if metrics == nil {
		return &CacheMetrics{}
	}

	result := &CacheMetrics{
		Hits:      metrics.Hits,
		Misses:    metrics.Misses,
		HitRate:   metrics.HitRate(),
		Evictions: metrics.KeysEvicted,
	}

	if sizer, ok := c.cache.(cacheSizer); ok {
		result.KeysCurrent = int64(sizer.Len())
		result.MemoryBytes = sizer.Size()
	}

	return result
}

// GetAPIMetrics returns a snapshot of the API metrics.
// Methods that never failed are absent from ErrorCounts.
func (c *Collector) GetAPIMetrics() *APIMetrics {
	result := &APIMetrics{
		RequestCounts:        make(map[string]uint64),
		ErrorCounts:          make(map[string]uint64),
		TotalDurationSeconds: make(map[string]float64),
	}

	c.methods.Range(func(key, value interface{}) bool {
		method, st := key.(string), value.(*methodStats)

		result.RequestCounts[method] = atomic.LoadUint64(&st.requests)
		if errs := atomic.LoadUint64(&st.errors); errs > 0 {
			result.ErrorCounts[method] = errs
		}
		st.mu.Lock()
		result.TotalDurationSeconds[method] = st.totalSeconds
		st.mu.Unlock()
		return true
	})

	return result
}
