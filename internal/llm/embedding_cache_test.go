package llm

import (
	"context"
	"testing"
	"time"
)

// countingEmbedder wraps MockEmbedder and counts calls that reach it.
type countingEmbedder struct {
	*MockEmbedder
	calls int
}

func (c *countingEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	c.calls++
	return c.MockEmbedder.Embed(ctx, text)
}

func TestCachedEmbedderMemoizes(t *testing.T) {
	inner := &countingEmbedder{MockEmbedder: NewMockEmbedder(8)}
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	c := NewCachedEmbedder(inner, time.Minute, clock)

	ctx := context.Background()
	first, err := c.Embed(ctx, "golang OR go developer")
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	second, err := c.Embed(ctx, "golang OR go developer")
	if err != nil {
		t.Fatalf("embed again: %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.calls)
	}
	if len(first) != len(second) {
		t.Errorf("vector lengths differ: %d vs %d", len(first), len(second))
	}

	if _, err := c.Embed(ctx, "different text here"); err != nil {
		t.Fatalf("embed different: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("inner calls = %d, want 2", inner.calls)
	}

	// Expiry re-embeds.
	now = now.Add(2 * time.Minute)
	if _, err := c.Embed(ctx, "golang OR go developer"); err != nil {
		t.Fatalf("embed after expiry: %v", err)
	}
	if inner.calls != 3 {
		t.Errorf("inner calls = %d, want 3", inner.calls)
	}
}

func TestCachedEmbedderErrorNotCached(t *testing.T) {
	inner := &countingEmbedder{MockEmbedder: NewMockEmbedder(8)}
	inner.Fail = context.DeadlineExceeded
	c := NewCachedEmbedder(inner, time.Minute, nil)

	if _, err := c.Embed(context.Background(), "text"); err == nil {
		t.Fatal("expected error")
	}

	inner.Fail = nil
	if _, err := c.Embed(context.Background(), "text"); err != nil {
		t.Fatalf("embed after recovery: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("inner calls = %d, want 2", inner.calls)
	}
}
