package llm

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// Embedder converts text to a fixed-length vector for similarity scoring.
// An empty result is never returned: adapters fail with an error instead,
// and callers degrade to "no similarity available".
type Embedder interface {
	// Embed returns the embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float64, error)

	// ModelID returns the embedding model identifier.
	ModelID() string
}

// OpenAIEmbedder implements Embedder using the OpenAI embeddings API.
type OpenAIEmbedder struct {
	client *openai.Client
	model  string
}

// NewOpenAIEmbedder creates an embedder backed by the OpenAI API.
// The API key is shared with the chat provider configuration.
func NewOpenAIEmbedder(cfg OpenAIConfig, model string) (*OpenAIEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	if model == "" {
		model = "text-embedding-3-small"
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &OpenAIEmbedder{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(e.model),
	})
	if err != nil {
		return nil, mapOpenAIError(err)
	}

	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, &ErrInvalidResponse{
			Err: fmt.Errorf("empty embedding in OpenAI response"),
		}
	}

	vec := make([]float64, len(resp.Data[0].Embedding))
	for i, v := range resp.Data[0].Embedding {
		vec[i] = float64(v)
	}
	return vec, nil
}

func (e *OpenAIEmbedder) ModelID() string {
	return e.model
}

// GeminiEmbedder implements Embedder using the Gemini embedding API.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder creates an embedder backed by the Gemini API.
func NewGeminiEmbedder(ctx context.Context, cfg GeminiConfig, model string) (*GeminiEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "text-embedding-004"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiEmbedder{client: client, model: model}, nil
}

func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	contents := []*genai.Content{
		{Parts: []*genai.Part{{Text: text}}},
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, contents, nil)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	if len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, &ErrInvalidResponse{
			Err: fmt.Errorf("empty embedding in Gemini response"),
		}
	}

	vec := make([]float64, len(result.Embeddings[0].Values))
	for i, v := range result.Embeddings[0].Values {
		vec[i] = float64(v)
	}
	return vec, nil
}

func (e *GeminiEmbedder) ModelID() string {
	return e.model
}

// MockEmbedder is a deterministic Embedder for testing. The vector is a
// pure function of the input text, so identical texts embed identically
// and similar tests are reproducible.
type MockEmbedder struct {
	dims int
	// Fail, when set, makes every Embed call return this error.
	Fail error
}

// NewMockEmbedder creates a MockEmbedder producing vectors of the given
// dimensionality.
func NewMockEmbedder(dims int) *MockEmbedder {
	if dims <= 0 {
		dims = 8
	}
	return &MockEmbedder{dims: dims}
}

func (m *MockEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	if m.Fail != nil {
		return nil, m.Fail
	}

	// Hash 4-byte shingles into dimension buckets, then L2-normalize.
	// Texts sharing substrings produce correlated vectors, which is enough
	// to exercise similarity thresholds in tests.
	vec := make([]float64, m.dims)
	for i := 0; i+4 <= len(text); i++ {
		h := fnv.New32a()
		h.Write([]byte(text[i : i+4]))
		vec[int(h.Sum32())%m.dims]++
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		vec[0] = 1
		return vec, nil
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec, nil
}

func (m *MockEmbedder) ModelID() string {
	return "mock-embedder"
}
