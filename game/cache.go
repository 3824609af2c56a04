package game

// EvalCache memoizes a pure evaluation function by position key. Entries are
// never evicted or invalidated.
//
// EvalCache is not safe for concurrent use: a miss reads, computes, then
// writes. Hosts sharing one cache between goroutines must synchronize it.
type EvalCache struct {
	evaluate Evaluate
	entries  map[StateKey]float64
	hits     int
	misses   int
}

// Memoize wraps evaluate in a new, empty cache.
func Memoize(evaluate Evaluate) *EvalCache {
	if evaluate == nil {
		panic("cannot memoize a nil evaluation function")
	}
	return &EvalCache{
		evaluate: evaluate,
		entries:  make(map[StateKey]float64),
	}
}

// Evaluate returns the cached score for s, computing it on first sight.
func (c *EvalCache) Evaluate(s State) float64 {
	key := s.Key()
	if score, ok := c.entries[key]; ok {
		c.hits++
		return score
	}
	c.misses++
	score := c.evaluate(s)
	c.entries[key] = score
	return score
}

// Len returns the number of cached positions.
func (c *EvalCache) Len() int {
	return len(c.entries)
}

func (c *EvalCache) Hits() int   { return c.hits }
func (c *EvalCache) Misses() int { return c.misses }

// HitRate returns the cache hit rate as a percentage.
func (c *EvalCache) HitRate() float64 {
	total := c.hits + c.misses
	if total == 0 {
		return 0
	}
	return float64(c.hits) / float64(total) * 100
}
