package topomesh

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// TopologyCache keeps parsed topologies in memory with LRU eviction.
//
// Concurrent Get calls for the same missing name share one loader call.
//
// Example:
//
//	cache, _ := topomesh.NewTopologyCache(16)
//	topo, err := cache.Get("coast", func() (*topomesh.Topology, error) {
//	    return parser.Parse("/data/coast.topojson")
//	})
type TopologyCache struct {
	entries *lru.Cache[string, *Topology]
	group   singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

// NewTopologyCache creates a cache holding at most size topologies.
func NewTopologyCache(size int) (*TopologyCache, error) {
	entries, err := lru.New[string, *Topology](size)
	if err != nil {
		return nil, fmt.Errorf("create topology cache: %w", err)
	}
	return &TopologyCache{entries: entries}, nil
}

// Get returns the cached topology for name, or calls loader on a miss and
// caches its result. Loader errors are returned and nothing is cached.
func (c *TopologyCache) Get(name string, loader func() (*Topology, error)) (*Topology, error) {
	if topo, ok := c.entries.Get(name); ok {
		c.hits.Add(1)
		return topo, nil
	}
	c.misses.Add(1)

	v, err, _ := c.group.Do(name, func() (any, error) {
		if topo, ok := c.entries.Get(name); ok {
			return topo, nil
		}
		topo, err := loader()
		if err != nil {
			return nil, err
		}
		c.entries.Add(name, topo)
		return topo, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load topology %q: %w", name, err)
	}
	return v.(*Topology), nil
}

// Add stores a topology, evicting the least recently used one if full.
func (c *TopologyCache) Add(name string, topo *Topology) {
	c.entries.Add(name, topo)
}

// Remove explicitly removes a topology from the cache.
func (c *TopologyCache) Remove(name string) {
	c.entries.Remove(name)
}

// Clear removes all topologies from the cache.
func (c *TopologyCache) Clear() {
	c.entries.Purge()
}

// Stats returns cache statistics.
func (c *TopologyCache) Stats() CacheStats {
	return CacheStats{
		Count:  c.entries.Len(),
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}

// CacheStats holds cache performance metrics.
type CacheStats struct {
	Count  int   // Number of topologies currently cached
	Hits   int64 // Get calls served from the cache
	Misses int64 // Get calls that ran (or joined) a loader
}
