package canvas2d

import "testing"

// TestPatternCacheHitsAndMisses counts one miss and then hits.
func TestPatternCacheHitsAndMisses(t *testing.T) {
	pc := NewPatternCache(1 << 10)
	p := mustPattern(t, 2, 2, RepetitionRepeat)

	first := pc.backing(p, 10, 10)
	second := pc.backing(p, 20, 20)
	if first != second {
		t.Error("repeat backing rebuilt for another canvas size")
	}
	st := pc.Stats()
	if st.Misses != 1 || st.Hits != 1 || st.Len != 1 || st.Bytes != 16 {
		t.Errorf("Stats() = %+v, want 1 miss, 1 hit, 1 entry of 16 bytes", st)
	}
}

// TestPatternCacheEvictsLeastRecentlyUsed stays within budget by
// dropping the oldest entry.
func TestPatternCacheEvictsLeastRecentlyUsed(t *testing.T) {
	pc := NewPatternCache(48) // three 2x2 backings
	p1 := mustPattern(t, 2, 2, RepetitionRepeat)
	p2 := mustPattern(t, 2, 2, RepetitionRepeat)
	p3 := mustPattern(t, 2, 2, RepetitionRepeat)
	p4 := mustPattern(t, 2, 2, RepetitionRepeat)

	pc.backing(p1, 1, 1)
	pc.backing(p2, 1, 1)
	pc.backing(p3, 1, 1)
	pc.backing(p1, 1, 1) // p2 is now the oldest
	pc.backing(p4, 1, 1)

	if pc.Len() != 3 || pc.Bytes() > pc.Budget() {
		t.Fatalf("Len = %d, Bytes = %d, want 3 entries within %d", pc.Len(), pc.Bytes(), pc.Budget())
	}
	if _, ok := pc.c.Peek(patternKey{id: p2.id, rep: RepetitionRepeat}); ok {
		t.Error("least recently used pattern was kept")
	}
	if _, ok := pc.c.Peek(patternKey{id: p1.id, rep: RepetitionRepeat}); !ok {
		t.Error("recently used pattern was evicted")
	}
	if got := pc.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

// TestPatternCacheOversizeNotStored builds oversize backings without
// caching them.
func TestPatternCacheOversizeNotStored(t *testing.T) {
	pc := NewPatternCache(8)
	p := mustPattern(t, 2, 2, RepetitionRepeat)
	if b := pc.backing(p, 4, 4); b == nil || b.Width() != 2 {
		t.Fatalf("backing = %v, want the 2x2 tile", b)
	}
	if pc.Len() != 0 || pc.Bytes() != 0 {
		t.Errorf("Len = %d, Bytes = %d, want empty", pc.Len(), pc.Bytes())
	}
}

// TestPatternCacheKeyedByCanvasSize builds a backing per canvas size for
// non-repeating patterns.
func TestPatternCacheKeyedByCanvasSize(t *testing.T) {
	pc := NewPatternCache(1 << 20)
	p := mustPattern(t, 2, 2, RepetitionNoRepeat)
	pc.backing(p, 10, 10)
	pc.backing(p, 20, 10)
	pc.backing(p, 10, 10)
	if pc.Len() != 2 {
		t.Errorf("Len = %d, want 2", pc.Len())
	}
}

// TestResetDropsPaintedPatterns removes the backings a context created,
// leaving other entries of a shared cache.
func TestResetDropsPaintedPatterns(t *testing.T) {
	pc := NewPatternCache(1 << 20)
	other := mustPattern(t, 2, 2, RepetitionRepeat)
	pc.backing(other, 1, 1)

	c := newTestContext(t, 4, 4, WithPatternCache(pc))
	c.SetFillPattern(mustPattern(t, 2, 2, RepetitionNoRepeat))
	_ = c.FillRect(0, 0, 4, 4)
	if pc.Len() != 2 {
		t.Fatalf("Len before Reset = %d, want 2", pc.Len())
	}

	c.Reset()
	if pc.Len() != 1 {
		t.Errorf("Len after Reset = %d, want 1", pc.Len())
	}
	if _, ok := pc.c.Peek(patternKey{id: other.id, rep: RepetitionRepeat}); !ok {
		t.Error("Reset dropped a pattern the context never painted")
	}
}

// TestCloseDropsPaintedPatterns frees a closed canvas's backings from a
// shared cache.
func TestCloseDropsPaintedPatterns(t *testing.T) {
	pc := NewPatternCache(1 << 20)
	c, err := NewContext(4, 4, WithPatternCache(pc))
	if err != nil {
		t.Fatal(err)
	}
	c.SetFillPattern(mustPattern(t, 2, 2, RepetitionNoRepeat))
	_ = c.FillRect(0, 0, 4, 4)
	if pc.Len() != 1 {
		t.Fatalf("Len before Close = %d, want 1", pc.Len())
	}

	_ = c.Close()
	if pc.Len() != 0 || pc.Bytes() != 0 {
		t.Errorf("after Close Len = %d, Bytes = %d; want 0, 0", pc.Len(), pc.Bytes())
	}
}

// TestRegistryDestroyDropsPatterns frees backings through DestroyCanvas.
func TestRegistryDestroyDropsPatterns(t *testing.T) {
	pc := NewPatternCache(1 << 20)
	r := NewRegistry(WithPatternCache(pc))
	id, err := r.CreateCanvas(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	c, _ := r.Context(id)
	c.SetFillPattern(mustPattern(t, 2, 2, RepetitionNoRepeat))
	_ = c.FillRect(0, 0, 4, 4)

	if err := r.DestroyCanvas(id); err != nil {
		t.Fatalf("DestroyCanvas() error = %v", err)
	}
	if pc.Len() != 0 {
		t.Errorf("Len after DestroyCanvas = %d, want 0", pc.Len())
	}
}

// TestPatternCacheClear empties the cache.
func TestPatternCacheClear(t *testing.T) {
	pc := NewPatternCache(1 << 10)
	pc.backing(mustPattern(t, 2, 2, RepetitionRepeat), 1, 1)
	pc.Clear()
	if pc.Len() != 0 || pc.Bytes() != 0 {
		t.Errorf("Len = %d, Bytes = %d after Clear, want 0", pc.Len(), pc.Bytes())
	}
}
