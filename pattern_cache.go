package canvas2d

import (
	"github.com/gogpu/canvas2d/internal/cache"
)

// DefaultPatternCacheBudget is the byte budget of a pattern cache
// created without an explicit one.
const DefaultPatternCacheBudget = 64 << 20

// patternKey identifies a backing pixmap.
type patternKey struct {
	id     uint64
	rep    Repetition
	width  int
	height int
}

// PatternCacheStats is a snapshot of pattern cache counters.
type PatternCacheStats = cache.Stats

// PatternCache keeps synthesized pattern backing pixmaps within a byte
// budget, evicting the least recently used first. A backing larger than
// the whole budget is built for each use and never stored.
//
// PatternCache is not safe for concurrent use. A cache may be shared by
// several contexts that are driven from one goroutine.
type PatternCache struct {
	c *cache.Cache[patternKey, *Pixmap]
}

// NewPatternCache creates a cache holding at most budget bytes of
// backing pixmaps.
func NewPatternCache(budget int64) *PatternCache {
	return &PatternCache{c: cache.New[patternKey, *Pixmap](budget)}
}

// backing returns the backing pixmap of p for a canvas of cw x ch.
func (pc *PatternCache) backing(p *Pattern, cw, ch int) *Pixmap {
	w, h := p.CacheDimensions(cw, ch)
	key := patternKey{id: p.id, rep: p.rep, width: w, height: h}

	evictions := pc.c.Stats().Evictions
	pm := pc.c.GetOrInsert(key, func() (*Pixmap, int64) {
		pm := p.synthesize(cw, ch)
		Logger().Debug("canvas2d: pattern cache miss",
			"pattern", p.id, "repetition", p.rep.String(), "bytes", pm.ByteSize())
		return pm, pm.ByteSize()
	})
	if n := pc.c.Stats().Evictions - evictions; n > 0 {
		Logger().Debug("canvas2d: pattern cache evicted entries",
			"count", n, "bytes", pc.c.Bytes(), "budget", pc.c.Budget())
	}
	return pm
}

// dropPattern removes every backing of the pattern with the given id.
func (pc *PatternCache) dropPattern(id uint64) int {
	return pc.c.DeleteFunc(func(k patternKey) bool { return k.id == id })
}

// Clear drops every entry and resets the recency clock.
func (pc *PatternCache) Clear() { pc.c.Clear() }

// Len returns the number of cached backings.
func (pc *PatternCache) Len() int { return pc.c.Len() }

// Bytes returns the bytes held by cached backings.
func (pc *PatternCache) Bytes() int64 { return pc.c.Bytes() }

// Budget returns the byte budget.
func (pc *PatternCache) Budget() int64 { return pc.c.Budget() }

// Stats returns cache counters.
func (pc *PatternCache) Stats() PatternCacheStats { return pc.c.Stats() }
