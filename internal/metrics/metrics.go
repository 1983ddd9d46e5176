package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type cacheStats struct {
	hits   int
	misses int
}

// Recorder captures lightweight, in-memory metrics about source calls, cache
// lookups and dropped events, and forwards them to OpenTelemetry when set up.
type Recorder struct {
	mu      sync.Mutex
	sources map[string]*sourceStats
	caches  map[string]*cacheStats
	dropped int
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		sources: make(map[string]*sourceStats),
		caches:  make(map[string]*cacheStats),
		otel:    otel,
	}
}

// RecordSourceAttempt counts one call to a data source for a dataset and
// stores its latency.
func (r *Recorder) RecordSourceAttempt(source, dataset string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.sources[source]
	if !ok {
		stats = &sourceStats{}
		r.sources[source] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSourceAttempt(source, dataset, duration, err)
	}
}

// RecordCacheLookup counts a cache hit or miss for a dataset.
func (r *Recorder) RecordCacheLookup(dataset string, hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.caches[dataset]
	if !ok {
		stats = &cacheStats{}
		r.caches[dataset] = stats
	}
	if hit {
		stats.hits++
	} else {
		stats.misses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(dataset, hit)
	}
}

// RecordDroppedEvent counts an event the sink failed to store.
func (r *Recorder) RecordDroppedEvent(sink string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.dropped++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDroppedEvent(sink)
	}
}

// Snapshot returns a copy of the current stats for the source.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.sources[source]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// SourceCalls returns the total attempts recorded for a source.
func (r *Recorder) SourceCalls(source string) int {
	return r.Snapshot(source).Calls
}

// SourceErrors returns the total failed attempts recorded for a source.
func (r *Recorder) SourceErrors(source string) int {
	return r.Snapshot(source).Errors
}

// LastCallLatency returns the last recorded latency for a source call.
func (r *Recorder) LastCallLatency(source string) time.Duration {
	return r.Snapshot(source).LastCallLatency
}

// CacheHits returns the hits recorded for a dataset.
func (r *Recorder) CacheHits(dataset string) int {
	hits, _ := r.cacheCounts(dataset)
	return hits
}

// CacheMisses returns the misses recorded for a dataset.
func (r *Recorder) CacheMisses(dataset string) int {
	_, misses := r.cacheCounts(dataset)
	return misses
}

// DroppedEvents returns how many events failed to reach their sink.
func (r *Recorder) DroppedEvents() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordRefreshCycle tracks background cache refresh cycles and errors.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRefresh(duration, err)
}

func (r *Recorder) cacheCounts(dataset string) (int, int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.caches[dataset]; ok {
		return stats.hits, stats.misses
	}
	return 0, 0
}
