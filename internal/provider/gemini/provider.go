// Package gemini provides an embedding provider backed by the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/nadavw/lantern/internal/domain"
)

const providerName = "gemini"

// embeddingTitle is attached to document embedding requests; the API uses it
// as additional context for RETRIEVAL_DOCUMENT tasks.
const embeddingTitle = "Document Embedding"

// Config holds configuration for the Gemini embedding provider.
type Config struct {
	APIKey string
	Model  string
}

// Provider implements domain.EmbeddingProvider using the Gemini API.
type Provider struct {
	client *genai.Client
	model  string
}

// NewProvider creates a new Gemini embedding provider.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("Gemini API key is required")
	}

	if cfg.Model == "" {
		cfg.Model = "gemini-embedding-001"
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Provider{
		client: client,
		model:  cfg.Model,
	}, nil
}

// EmbedOne returns the embedding of a single text.
func (p *Provider) EmbedOne(ctx context.Context, text string, dimension int, taskHint string) ([]float32, error) {
	if text == "" {
		return nil, errors.New("text cannot be empty")
	}

	cfg := &genai.EmbedContentConfig{
		TaskType:             taskHint,
		OutputDimensionality: genai.Ptr(int32(dimension)),
	}
	if taskHint == domain.TaskRetrievalDocument {
		cfg.Title = embeddingTitle
	}

	resp, err := p.client.Models.EmbedContent(ctx, p.model, genai.Text(text), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding: %w", err)
	}

	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, errors.New("no embeddings returned")
	}

	return resp.Embeddings[0].Values, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return providerName
}

// Model returns the embedding model identifier.
func (p *Provider) Model() string {
	return p.model
}
