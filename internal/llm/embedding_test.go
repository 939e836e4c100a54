package llm

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestMockEmbedderDeterministic(t *testing.T) {
	e := NewMockEmbedder(8)

	a, err := e.Embed(context.Background(), "site:linkedin.com/in recruiter AND golang")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	b, err := e.Embed(context.Background(), "site:linkedin.com/in recruiter AND golang")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}

	if len(a) != 8 {
		t.Fatalf("expected 8 dims, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("embeddings differ at dim %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestMockEmbedderNormalized(t *testing.T) {
	e := NewMockEmbedder(16)

	vec, err := e.Embed(context.Background(), "senior backend engineer outreach message draft")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if math.Abs(norm-1.0) > 1e-9 {
		t.Errorf("expected unit norm, got %v", norm)
	}
}

func TestMockEmbedderShortText(t *testing.T) {
	e := NewMockEmbedder(8)

	vec, err := e.Embed(context.Background(), "ab")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	if vec[0] != 1 {
		t.Errorf("expected fallback unit vector for short text, got %v", vec)
	}
}

func TestMockEmbedderFail(t *testing.T) {
	e := NewMockEmbedder(8)
	e.Fail = &ErrProviderUnavailable{}

	_, err := e.Embed(context.Background(), "anything")
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
