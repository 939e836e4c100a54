package hints

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ssanyal/recruitdojo/internal/catalog"
	"github.com/ssanyal/recruitdojo/internal/llm"
)

func testChallenge(t *testing.T) *catalog.Challenge {
	t.Helper()
	ch := catalog.Default().ByID("bool-golang-basic")
	if ch == nil {
		t.Fatal("seed challenge bool-golang-basic missing")
	}
	return ch
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"hint":"Think about how to express alternatives for the same role title.","focus":"Synonym coverage"}`),
	})
	svc := NewService(mock, DefaultConfig())

	h, err := svc.Generate(context.Background(), Input{
		Challenge: testChallenge(t),
		Level:     2,
		Draft:     "golang developer",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if h.Level != 2 || h.Focus != "Synonym coverage" {
		t.Errorf("hint = %+v, want level 2 focus 'Synonym coverage'", h)
	}
	if !strings.Contains(h.Text, "alternatives") {
		t.Errorf("hint text = %q", h.Text)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "coaching-hint" {
		t.Errorf("schema = %+v", req.Schema)
	}
	user := req.Messages[0].Content
	if !strings.Contains(user, "Rubric:") || !strings.Contains(user, "Trainee's draft so far:") {
		t.Errorf("user message missing context:\n%s", user)
	}
}

func TestGenerateLevelBounds(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	for _, level := range []int{0, MaxLevel + 1} {
		if _, err := svc.Generate(context.Background(), Input{Challenge: testChallenge(t), Level: level}); err == nil {
			t.Errorf("level %d: expected error", level)
		}
	}
}

func TestGenerateProviderError(t *testing.T) {
	// Empty mock queue surfaces as provider unavailable.
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	if _, err := svc.Generate(context.Background(), Input{Challenge: testChallenge(t), Level: 1}); err == nil {
		t.Fatal("expected provider error")
	}
}

func TestGenerateMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	svc := NewService(mock, DefaultConfig())
	if _, err := svc.Generate(context.Background(), Input{Challenge: testChallenge(t), Level: 1}); err == nil {
		t.Fatal("expected parse error")
	}
}
