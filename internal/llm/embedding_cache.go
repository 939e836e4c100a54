package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/ssanyal/recruitdojo/internal/cache"
)

// CachedEmbedder memoizes embeddings by text digest for a short TTL.
// Embedding calls are the most expensive per-token operation in the
// pipeline and identical text always embeds identically, so repeats
// (retries, reference comparisons) skip the API.
type CachedEmbedder struct {
	inner Embedder
	cache *cache.TTL[[]float64]
}

// NewCachedEmbedder wraps an Embedder with a TTL cache. A nil clock uses
// time.Now.
func NewCachedEmbedder(inner Embedder, ttl time.Duration, clock cache.Clock) *CachedEmbedder {
	return &CachedEmbedder{
		inner: inner,
		cache: cache.NewTTL[[]float64](ttl, clock),
	}
}

func (c *CachedEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	key := textDigest(text)
	if vec, ok := c.cache.Get(key); ok {
		return vec, nil
	}
	vec, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	c.cache.Put(key, vec)
	return vec, nil
}

func (c *CachedEmbedder) ModelID() string {
	return c.inner.ModelID()
}

func textDigest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
