package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// stuckProvider blocks until released, ignoring context cancellation the
// way a misbehaving HTTP client would.
type stuckProvider struct {
	release chan struct{}
}

func newStuckProvider() *stuckProvider {
	return &stuckProvider{release: make(chan struct{})}
}

func (p *stuckProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	<-p.release
	return nil, errors.New("released")
}

func (p *stuckProvider) ModelID() string { return "stuck" }

type stuckEmbedder struct {
	release chan struct{}
}

func (e *stuckEmbedder) Embed(_ context.Context, _ string) ([]float64, error) {
	<-e.release
	return nil, errors.New("released")
}

func (e *stuckEmbedder) ModelID() string { return "stuck-embedder" }

func TestTimeoutUnblocksStuckProvider(t *testing.T) {
	stuck := newStuckProvider()
	defer close(stuck.release)
	p := WithTimeout(stuck, 20*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected a deadline error")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("call blocked for %s despite the deadline", elapsed)
	}

	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected a wrapped DeadlineExceeded, got: %v", err)
	}
}

func TestTimeoutPassesThroughFastCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithTimeout(mock, time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestTimeoutDefaultsWhenUnset(t *testing.T) {
	p := WithTimeout(NewMockProvider(), 0).(*TimeoutProvider)
	if p.timeout != DefaultTimeout {
		t.Fatalf("timeout = %s, want %s", p.timeout, DefaultTimeout)
	}
}

func TestTimeoutModelIDDelegates(t *testing.T) {
	p := WithTimeout(NewMockProvider(), time.Second)
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}

func TestEmbedTimeoutUnblocksStuckEmbedder(t *testing.T) {
	stuck := &stuckEmbedder{release: make(chan struct{})}
	defer close(stuck.release)
	e := WithEmbedTimeout(stuck, 20*time.Millisecond)

	_, err := e.Embed(context.Background(), "boolean search basics")
	if err == nil {
		t.Fatal("expected a deadline error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected a wrapped DeadlineExceeded, got: %v", err)
	}
}
