package solver

import (
	"context"
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"

	"github.com/facelab/cubekit"
)

// Cached wraps an Oracle with an LRU cache keyed by canonical state.
// Solutions are pure functions of the state, so a hit can be returned
// without consulting the underlying oracle at all. Failures are not
// cached; a retry goes back to the oracle.
type Cached struct {
	oracle Oracle

	mux sync.Mutex
	lru *simplelru.LRU
}

// DefaultCacheSize is used when NewCached is given a non-positive size.
const DefaultCacheSize = 128

// NewCached returns a caching decorator holding up to size solutions.
// A non-positive size falls back to DefaultCacheSize.
func NewCached(oracle Oracle, size int) *Cached {
	if size <= 0 {
		size = DefaultCacheSize
	}
	// NewLRU only errors on a non-positive size, which is clamped above.
	lru, _ := simplelru.NewLRU(size, nil)
	return &Cached{oracle: oracle, lru: lru}
}

// Solve returns a cached solution when available, otherwise delegates to
// the wrapped oracle and stores the result.
func (c *Cached) Solve(ctx context.Context, state cubekit.State) (string, error) {
	c.mux.Lock()
	if cached, ok := c.lru.Get(string(state)); ok {
		c.mux.Unlock()
		return cached.(string), nil
	}
	c.mux.Unlock()

	solution, err := c.oracle.Solve(ctx, state)
	if err != nil {
		return "", err
	}

	c.mux.Lock()
	c.lru.Add(string(state), solution)
	c.mux.Unlock()
	return solution, nil
}

// Len reports how many solutions are currently cached.
func (c *Cached) Len() int {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.lru.Len()
}
