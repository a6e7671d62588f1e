package cache

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/driftline/buoywatch/internal/config"
	"github.com/driftline/buoywatch/internal/models"
)

// ObservationEntry wraps a cached reading with its expiry
type ObservationEntry struct {
	Data      *models.Observation
	ExpiresAt time.Time
}

// ObservationCache keeps the latest reading per station and property in a
// TTL'd LRU, so repeated requests for the same station don't hit the SOS
// endpoint again. A nil Data is a valid entry: the station reported an
// empty reading and there is no point refetching until the TTL runs out.
type ObservationCache struct {
	lru    *lru.Cache[string, *ObservationEntry]
	ttl    time.Duration
	clock  clock
	mu     sync.RWMutex
	hits   uint64
	misses uint64
}

func NewObservationCache(cfg *config.CacheConfig) (*ObservationCache, error) {
	lruCache, err := lru.New[string, *ObservationEntry](cfg.ObservationLRUSize)
	if err != nil {
		return nil, err
	}

	return &ObservationCache{
		lru:   lruCache,
		ttl:   cfg.GetObservationLRUTTL(),
		clock: systemClock{},
	}, nil
}

// observationKey generates a unique cache key for a station and property
func observationKey(stationID, property string) string {
	return stationID + ":" + property
}

func (c *ObservationCache) Get(stationID, property string) (*models.Observation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.lru.Get(observationKey(stationID, property))
	if !ok {
		c.misses++
		return nil, false
	}

	if c.clock.Now().After(entry.ExpiresAt) {
		c.lru.Remove(observationKey(stationID, property))
		c.misses++
		return nil, false
	}

	c.hits++
	return entry.Data, true
}

func (c *ObservationCache) Add(stationID, property string, obs *models.Observation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Add(observationKey(stationID, property), &ObservationEntry{
		Data:      obs,
		ExpiresAt: c.clock.Now().Add(c.ttl),
	})
}

// Stats returns statistics about cache hits and misses
func (c *ObservationCache) Stats() map[string]uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return map[string]uint64{
		"hits":   c.hits,
		"misses": c.misses,
	}
}

// Clear removes all entries from the cache
func (c *ObservationCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Purge()
}
