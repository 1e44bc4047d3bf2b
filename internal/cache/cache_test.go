package cache

import (
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string, int](4)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) ok = true, want false")
	}

	c.Set("a", 1)
	c.Set("a", 2)
	v, ok := c.Get("a")
	if !ok || v != 2 {
		t.Errorf("Get(a) = %d, %v; want 2, true", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	for i := 0; i < 3; i++ {
		c.Set(i, i)
	}

	// Touch 0 so 1 becomes the oldest.
	c.Get(0)
	c.Set(3, 3)

	if _, ok := c.Get(1); ok {
		t.Error("key 1 should have been evicted")
	}
	for _, k := range []int{0, 2, 3} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("key %d missing after eviction", k)
		}
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestCache_GetOrCreate(t *testing.T) {
	c := New[string, int](8)
	calls := 0
	create := func() int {
		calls++
		return 42
	}

	if v := c.GetOrCreate("k", create); v != 42 {
		t.Errorf("GetOrCreate() = %d, want 42", v)
	}
	if v := c.GetOrCreate("k", create); v != 42 {
		t.Errorf("GetOrCreate() second = %d, want 42", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 {
		t.Errorf("Stats() hits=%d misses=%d, want 1/1", s.Hits, s.Misses)
	}
}

func TestCache_DeleteClear(t *testing.T) {
	c := New[string, int](0)
	if c.Stats().Capacity != DefaultCapacity {
		t.Errorf("Capacity = %d, want %d", c.Stats().Capacity, DefaultCapacity)
	}

	c.Set("a", 1)
	c.Set("b", 2)
	if !c.Delete("a") {
		t.Error("Delete(a) = false, want true")
	}
	if c.Delete("a") {
		t.Error("Delete(a) twice = true, want false")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	// The list must be usable after Clear.
	c.Set("c", 3)
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Errorf("Get(c) = %d, %v; want 3, true", v, ok)
	}
}

func TestCache_ConcurrentGetOrCreate(t *testing.T) {
	c := New[string, int](16)
	var created atomic.Int32
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				k := strconv.Itoa(i % 4)
				c.GetOrCreate(k, func() int {
					created.Add(1)
					return i
				})
			}
		}()
	}
	wg.Wait()

	if got := created.Load(); got != 4 {
		t.Errorf("create called %d times, want 4", got)
	}
}

func BenchmarkCacheGetOrCreate(b *testing.B) {
	c := New[string, int](1000)
	for i := 0; i < b.N; i++ {
		c.GetOrCreate(strconv.Itoa(i%100), func() int { return i })
	}
}
