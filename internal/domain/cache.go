package domain

import (
	"context"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// EmbeddingCache is a bounded LRU cache mapping content fingerprints to
// embedding vectors, with hit/miss counters. A single mutex covers lookup,
// insert, eviction and the counters, so each call observes them as one atomic
// step. The compute function runs with the lock released; two concurrent
// misses for the same fingerprint may both invoke it.
type EmbeddingCache struct {
	mu      sync.Mutex
	lru     *simplelru.LRU[string, []float32]
	hits    uint64
	misses  uint64
	maxSize int
}

// NewEmbeddingCache creates a cache holding at most maxSize entries.
func NewEmbeddingCache(maxSize int) (*EmbeddingCache, error) {
	lru, err := simplelru.NewLRU[string, []float32](maxSize, nil)
	if err != nil {
		return nil, err
	}

	return &EmbeddingCache{
		lru:     lru,
		maxSize: maxSize,
	}, nil
}

// GetOrCompute returns the cached vector for fingerprint, or invokes compute
// on a miss. A successful result is stored, evicting the least-recently-used
// entry when the cache is full. A failed compute is counted as a miss but
// never cached, so the next call for the same fingerprint retries.
func (c *EmbeddingCache) GetOrCompute(
	ctx context.Context,
	fingerprint string,
	compute func(ctx context.Context) ([]float32, error),
) ([]float32, error) {
	c.mu.Lock()
	if vector, ok := c.lru.Get(fingerprint); ok {
		c.hits++
		c.mu.Unlock()
		return vector, nil
	}
	c.misses++
	c.mu.Unlock()

	vector, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.lru.Add(fingerprint, vector)
	c.mu.Unlock()

	return vector, nil
}

// Clear evicts all entries and resets the counters to zero.
func (c *EmbeddingCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Purge()
	c.hits = 0
	c.misses = 0
}

// Stats returns a snapshot of the cache counters. The hit rate is 0 when no
// lookups have happened yet.
func (c *EmbeddingCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := CacheStats{
		Hits:    c.hits,
		Misses:  c.misses,
		Size:    c.lru.Len(),
		MaxSize: c.maxSize,
	}

	if total := c.hits + c.misses; total > 0 {
		stats.HitRate = float64(c.hits) / float64(total)
	}

	return stats
}
