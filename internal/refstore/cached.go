package refstore

import (
	"context"
	"time"

	"github.com/ssanyal/recruitdojo/internal/cache"
)

// DefaultLookupTTL bounds how stale a cached reference list may get when
// another process writes to the same database.
const DefaultLookupTTL = 5 * time.Minute

// CachedRepo wraps a Repo with a short-TTL lookup cache per challenge.
// Inserts through this wrapper invalidate the challenge's entry, so a
// single process always reads its own writes.
type CachedRepo struct {
	inner Repo
	cache *cache.TTL[[]*Reference]
}

// NewCachedRepo creates the caching wrapper. A nil clock uses time.Now.
func NewCachedRepo(inner Repo, ttl time.Duration, clock cache.Clock) *CachedRepo {
	return &CachedRepo{
		inner: inner,
		cache: cache.NewTTL[[]*Reference](ttl, clock),
	}
}

func (c *CachedRepo) ActiveByChallenge(ctx context.Context, challengeID string) ([]*Reference, error) {
	if refs, ok := c.cache.Get(challengeID); ok {
		return refs, nil
	}
	refs, err := c.inner.ActiveByChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	c.cache.Put(challengeID, refs)
	return refs, nil
}

func (c *CachedRepo) Insert(ctx context.Context, ref *Reference) error {
	if err := c.inner.Insert(ctx, ref); err != nil {
		return err
	}
	c.cache.Invalidate(ref.ChallengeID)
	return nil
}
