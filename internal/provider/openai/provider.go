// Package openai provides an embedding provider backed by the OpenAI API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const providerName = "openai"

// Config holds configuration for the OpenAI embedding provider.
type Config struct {
	APIKey string
	Model  string
}

// Provider implements domain.EmbeddingProvider using OpenAI.
type Provider struct {
	client openai.Client
	model  string
}

// NewProvider creates a new OpenAI embedding provider.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	if cfg.Model == "" {
		cfg.Model = string(openai.EmbeddingModelTextEmbedding3Large)
	}

	return &Provider{
		client: openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  cfg.Model,
	}, nil
}

// EmbedOne returns the embedding of a single text. The task hint is ignored:
// OpenAI embedding models take no task parameter.
func (p *Provider) EmbedOne(ctx context.Context, text string, dimension int, _ string) ([]float32, error) {
	if text == "" {
		return nil, errors.New("text cannot be empty")
	}

	//nolint:exhaustruct // OpenAI SDK struct has many optional fields
	params := openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: []string{text},
		},
		Model: openai.EmbeddingModel(p.model),
	}

	// Only v3 models accept a requested dimensionality.
	if strings.HasPrefix(p.model, "text-embedding-3") {
		params.Dimensions = openai.Int(int64(dimension))
	}

	resp, err := p.client.Embeddings.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, errors.New("no embeddings returned")
	}

	vector := make([]float32, len(resp.Data[0].Embedding))
	for i, v := range resp.Data[0].Embedding {
		vector[i] = float32(v)
	}

	return vector, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return providerName
}

// Model returns the embedding model identifier.
func (p *Provider) Model() string {
	return p.model
}
