package mapper

import (
	"sync/atomic"

	"github.com/mixpeek/iab-product-mapper/cache"
)

// stats holds the mapper's running counters. Updates are atomic so
// concurrent mapping calls never need a lock; reads are individually
// atomic, which makes a snapshot approximate under load.
type stats struct {
	requests             atomic.Int64
	cacheHits            atomic.Int64
	deterministicMatches atomic.Int64
	semanticMatches      atomic.Int64
	noMatches            atomic.Int64
	errors               atomic.Int64
	totalLatencyMillis   atomic.Int64
}

// Snapshot is a point-in-time view of mapper statistics.
type Snapshot struct {
	Requests             int64        `json:"requests"`
	CacheHits            int64        `json:"cache_hits"`
	DeterministicMatches int64        `json:"deterministic_matches"`
	SemanticMatches      int64        `json:"semantic_matches"`
	NoMatches            int64        `json:"no_matches"`
	Errors               int64        `json:"errors"`
	TotalLatencyMillis   int64        `json:"total_latency_ms"`
	AvgLatencyMillis     float64      `json:"avg_latency_ms"`
	Cache                *cache.Stats `json:"cache,omitempty"`
}

// Stats returns a snapshot of the mapper's counters with derived average
// latency, plus cache statistics when a cache is configured.
func (m *Mapper) Stats() Snapshot {
	s := Snapshot{
		Requests:             m.stats.requests.Load(),
		CacheHits:            m.stats.cacheHits.Load(),
		DeterministicMatches: m.stats.deterministicMatches.Load(),
		SemanticMatches:      m.stats.semanticMatches.Load(),
		NoMatches:            m.stats.noMatches.Load(),
		Errors:               m.stats.errors.Load(),
		TotalLatencyMillis:   m.stats.totalLatencyMillis.Load(),
	}
	if s.Requests > 0 {
		s.AvgLatencyMillis = float64(s.TotalLatencyMillis) / float64(s.Requests)
	}
	if m.cache != nil {
		cs := m.cache.Stats()
		s.Cache = &cs
	}
	return s
}

// ResetStats zeroes all counters.
func (m *Mapper) ResetStats() {
	m.stats.requests.Store(0)
	m.stats.cacheHits.Store(0)
	m.stats.deterministicMatches.Store(0)
	m.stats.semanticMatches.Store(0)
	m.stats.noMatches.Store(0)
	m.stats.errors.Store(0)
	m.stats.totalLatencyMillis.Store(0)
}
