package survey

import (
	"sync"

	"github.com/makuralymi/Questionnaire-survey/internal/model"
)

// StatsCache holds the most recent unfiltered Aggregation Result so repeated
// no-filter queries skip recomputation. It is an owned, injectable object:
// warmed once at process start, replaced synchronously after every accepted
// write. A failed write never touches it, so it retains its last-good value.
type StatsCache struct {
	mu    sync.RWMutex
	stats *model.Stats
}

// NewStatsCache returns an empty cache; Get returns nil until the first Set.
func NewStatsCache() *StatsCache {
	return &StatsCache{}
}

// Get returns the cached result, or nil when absent. Callers seeing nil must
// compute eagerly rather than answer a request with a missing result.
func (c *StatsCache) Get() *model.Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// Set atomically replaces the cached result.
func (c *StatsCache) Set(stats *model.Stats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats = stats
}
