package cache

import (
	"strconv"
	"testing"
)

func sized(v string, n int64) func() (string, int64) {
	return func() (string, int64) { return v, n }
}

// TestGetOrInsertHitAndMiss checks that create runs only on a miss.
func TestGetOrInsertHitAndMiss(t *testing.T) {
	c := New[string, string](100)

	calls := 0
	create := func() (string, int64) {
		calls++
		return "v", 10
	}

	if got := c.GetOrInsert("a", create); got != "v" {
		t.Fatalf("GetOrInsert = %q, want %q", got, "v")
	}
	if got := c.GetOrInsert("a", create); got != "v" {
		t.Fatalf("GetOrInsert = %q, want %q", got, "v")
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	st := c.Stats()
	if st.Hits != 1 || st.Misses != 1 {
		t.Errorf("Stats hits/misses = %d/%d, want 1/1", st.Hits, st.Misses)
	}
	if c.Bytes() != 10 {
		t.Errorf("Bytes() = %d, want 10", c.Bytes())
	}
}

// TestBudgetNeverExceeded inserts many entries and checks the running total.
func TestBudgetNeverExceeded(t *testing.T) {
	c := New[int, string](100)
	for i := 0; i < 50; i++ {
		c.GetOrInsert(i, sized(strconv.Itoa(i), int64(7+i%13)))
		if c.Bytes() > c.Budget() {
			t.Fatalf("after insert %d: Bytes() = %d exceeds budget %d", i, c.Bytes(), c.Budget())
		}
	}
	if c.Stats().Evictions == 0 {
		t.Error("expected evictions with 50 inserts into a 100 byte budget")
	}
}

// TestOversizeEntryNotInserted checks that an entry larger than the whole
// budget is returned but leaves the cache untouched.
func TestOversizeEntryNotInserted(t *testing.T) {
	c := New[string, string](100)
	c.GetOrInsert("small", sized("s", 40))

	got := c.GetOrInsert("huge", sized("h", 101))
	if got != "h" {
		t.Fatalf("GetOrInsert = %q, want %q", got, "h")
	}
	if c.Len() != 1 || c.Bytes() != 40 {
		t.Errorf("cache = %d entries / %d bytes, want 1 / 40", c.Len(), c.Bytes())
	}
	if _, ok := c.Peek("small"); !ok {
		t.Error("oversize insert evicted an existing entry")
	}
	if _, ok := c.Peek("huge"); ok {
		t.Error("oversize entry was stored")
	}
}

// TestEvictsSmallestTick checks LRU order and that hits refresh recency.
func TestEvictsSmallestTick(t *testing.T) {
	c := New[string, string](30)
	c.GetOrInsert("a", sized("a", 10))
	c.GetOrInsert("b", sized("b", 10))
	c.GetOrInsert("c", sized("c", 10))

	// Touch "a" so "b" becomes the oldest.
	c.GetOrInsert("a", sized("unused", 10))

	c.GetOrInsert("d", sized("d", 10))

	if _, ok := c.Peek("b"); ok {
		t.Error("expected b to be evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Peek(k); !ok {
			t.Errorf("expected %s to survive", k)
		}
	}
}

// TestTicksAreUnique checks that every access receives a fresh tick.
func TestTicksAreUnique(t *testing.T) {
	c := New[string, string](100)
	c.GetOrInsert("a", sized("a", 1))
	c.GetOrInsert("b", sized("b", 1))
	ta, _ := c.Tick("a")
	tb, _ := c.Tick("b")
	if ta >= tb {
		t.Fatalf("ticks a=%d b=%d, want a < b", ta, tb)
	}
	c.Get("a")
	ta2, _ := c.Tick("a")
	if ta2 <= tb {
		t.Errorf("tick after hit = %d, want > %d", ta2, tb)
	}
}

// TestClearResetsClock checks that Clear empties the cache and the tick.
func TestClearResetsClock(t *testing.T) {
	c := New[string, string](100)
	c.GetOrInsert("a", sized("a", 5))
	c.GetOrInsert("b", sized("b", 5))
	c.Clear()

	if c.Len() != 0 || c.Bytes() != 0 {
		t.Fatalf("after Clear: %d entries / %d bytes", c.Len(), c.Bytes())
	}
	c.GetOrInsert("c", sized("c", 5))
	if tick, _ := c.Tick("c"); tick != 1 {
		t.Errorf("first tick after Clear = %d, want 1", tick)
	}
}

func TestDeleteFunc(t *testing.T) {
	c := New[int, string](100)
	for i := 0; i < 6; i++ {
		c.GetOrInsert(i, sized("x", 5))
	}
	n := c.DeleteFunc(func(k int) bool { return k%2 == 0 })
	if n != 3 {
		t.Errorf("DeleteFunc removed %d, want 3", n)
	}
	if c.Bytes() != 15 {
		t.Errorf("Bytes() = %d, want 15", c.Bytes())
	}
	if _, ok := c.Peek(1); !ok {
		t.Error("DeleteFunc removed a non-matching key")
	}
}

func TestZeroBudgetStoresNothing(t *testing.T) {
	c := New[string, string](0)
	c.GetOrInsert("a", sized("a", 1))
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	// Zero-sized values still fit.
	c.GetOrInsert("z", sized("z", 0))
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func BenchmarkGetOrInsertHit(b *testing.B) {
	c := New[int, int](1 << 20)
	for i := 0; i < 100; i++ {
		c.GetOrInsert(i, func() (int, int64) { return i, 64 })
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrInsert(i%100, func() (int, int64) { return i, 64 })
	}
}
