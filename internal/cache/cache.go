// Package cache provides memoization of computed match scores keyed by
// (profile, job) pair.
package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vkinnnnn/givemejobs-match/internal/types"
)

// Cache is the key-value collaborator contract for score memoization.
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(key string) (*types.MatchScore, bool)
	Set(key string, score *types.MatchScore, ttl time.Duration)
	// Invalidate removes every entry whose key contains the fragment and
	// returns the number of entries removed. Passing a record id evicts all
	// scores involving that record.
	Invalidate(fragment string) int
}

// Key builds the cache key for a (profile, job) pair.
func Key(profileID, jobID uuid.UUID) string {
	return profileID.String() + ":" + jobID.String()
}

type entry struct {
	score     *types.MatchScore
	expiresAt time.Time // zero means no expiry
}

// MemoryCache is an in-process Cache implementation.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]entry)}
}

// Get returns a copy of the cached score for a key, if present and unexpired.
// Callers own the returned value; mutating it does not affect the cache.
func (c *MemoryCache) Get(key string) (*types.MatchScore, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return cloneScore(e.score), true
}

// Set stores a copy of the score under the key. A non-positive ttl means no
// expiry.
func (c *MemoryCache) Set(key string, score *types.MatchScore, ttl time.Duration) {
	e := entry{score: cloneScore(score)}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
}

// Invalidate removes every entry whose key contains the fragment.
func (c *MemoryCache) Invalidate(fragment string) int {
	if fragment == "" {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if strings.Contains(key, fragment) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// cloneScore deep-copies a score so cached values stay isolated from caller
// mutations.
func cloneScore(score *types.MatchScore) *types.MatchScore {
	if score == nil {
		return nil
	}
	clone := *score
	clone.MatchingSkills = append([]string(nil), score.MatchingSkills...)
	clone.MissingSkills = append([]string(nil), score.MissingSkills...)
	clone.Recommendations = append([]string(nil), score.Recommendations...)
	return &clone
}

// Len returns the number of live entries, including any not yet evicted by
// lazy expiry.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
