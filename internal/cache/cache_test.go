package cache

import (
	"testing"
	"time"
)

// steppedClock returns a Clock that advances only when step is called.
type steppedClock struct {
	t time.Time
}

func (s *steppedClock) now() time.Time       { return s.t }
func (s *steppedClock) step(d time.Duration) { s.t = s.t.Add(d) }

func TestTTLGetPut(t *testing.T) {
	clk := &steppedClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	c := NewTTL[int](5*time.Minute, clk.now)

	if _, ok := c.Get("a"); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Put("a", 42)
	v, ok := c.Get("a")
	if !ok || v != 42 {
		t.Fatalf("expected hit with 42, got %v %v", v, ok)
	}
}

func TestTTLExpiry(t *testing.T) {
	clk := &steppedClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	c := NewTTL[string](5*time.Minute, clk.now)

	c.Put("k", "v")

	clk.step(4 * time.Minute)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("entry expired too early")
	}

	clk.step(2 * time.Minute)
	if _, ok := c.Get("k"); ok {
		t.Fatal("entry should have expired")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry not evicted, len = %d", c.Len())
	}
}

func TestTTLInvalidate(t *testing.T) {
	clk := &steppedClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	c := NewTTL[int](time.Hour, clk.now)

	c.Put("a", 1)
	c.Put("b", 2)

	c.Invalidate("a")
	if _, ok := c.Get("a"); ok {
		t.Fatal("invalidated entry still present")
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatal("unrelated entry was removed")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected empty cache after Clear, len = %d", c.Len())
	}
}
