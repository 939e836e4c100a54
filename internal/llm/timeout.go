package llm

import (
	"context"
	"fmt"
	"time"
)

// DefaultTimeout bounds one provider call end to end, retries included.
const DefaultTimeout = 30 * time.Second

// TimeoutProvider is a decorator that enforces a per-call deadline. The
// call runs in its own goroutine so even a client that ignores context
// cancellation cannot block the caller; the judge chain advances to the
// next model instead.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps a Provider with a per-call deadline. A non-positive
// timeout falls back to DefaultTimeout.
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		d = DefaultTimeout
	}
	return &TimeoutProvider{inner: p, timeout: d}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	type result struct {
		resp *Response
		err  error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := t.inner.Generate(ctx, req)
		done <- result{resp, err}
	}()

	select {
	case r := <-done:
		return r.resp, r.err
	case <-ctx.Done():
		return nil, &ErrProviderUnavailable{
			Err: fmt.Errorf("no response from %s within %s: %w", t.inner.ModelID(), t.timeout, ctx.Err()),
		}
	}
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}

// TimeoutEmbedder bounds each Embed call the same way. On expiry the
// pipeline scores without the similarity signal.
type TimeoutEmbedder struct {
	inner   Embedder
	timeout time.Duration
}

// WithEmbedTimeout wraps an Embedder with a per-call deadline.
func WithEmbedTimeout(e Embedder, d time.Duration) Embedder {
	if d <= 0 {
		d = DefaultTimeout
	}
	return &TimeoutEmbedder{inner: e, timeout: d}
}

func (t *TimeoutEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	type result struct {
		vec []float64
		err error
	}
	done := make(chan result, 1)
	go func() {
		vec, err := t.inner.Embed(ctx, text)
		done <- result{vec, err}
	}()

	select {
	case r := <-done:
		return r.vec, r.err
	case <-ctx.Done():
		return nil, fmt.Errorf("no embedding from %s within %s: %w", t.inner.ModelID(), t.timeout, ctx.Err())
	}
}

func (t *TimeoutEmbedder) ModelID() string {
	return t.inner.ModelID()
}
