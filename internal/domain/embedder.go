package domain

import (
	"context"
	"fmt"

	"github.com/nadavw/lantern/internal/observability"
)

// Embedder resolves text to an embedding vector through the cache, keyed by
// the content fingerprint. It validates the provider response shape: anything
// other than exactly one vector of the configured dimension is a failure,
// never a partially-filled vector.
type Embedder struct {
	provider  EmbeddingProvider
	cache     *EmbeddingCache
	dimension int
}

// NewEmbedder creates a cache-backed embedder.
func NewEmbedder(provider EmbeddingProvider, cache *EmbeddingCache, dimension int) *Embedder {
	return &Embedder{
		provider:  provider,
		cache:     cache,
		dimension: dimension,
	}
}

// Embed returns the embedding for text, from the cache when possible. The
// text is embedded as-is; the orchestrator trims and validates before calling.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	fingerprint := Fingerprint(text)

	return e.cache.GetOrCompute(ctx, fingerprint, func(ctx context.Context) ([]float32, error) {
		logger := observability.FromContext(ctx)
		logger.Debug("embedding cache miss, calling provider",
			observability.String("fingerprint", fingerprint),
			observability.String("provider", e.provider.Name()))

		vector, err := e.provider.EmbedOne(ctx, text, e.dimension, TaskRetrievalDocument)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrProvider, err)
		}

		if len(vector) != e.dimension {
			return nil, fmt.Errorf("%w: provider returned vector of length %d, want %d",
				ErrProvider, len(vector), e.dimension)
		}

		return vector, nil
	})
}

// Dimension returns the configured embedding dimension.
func (e *Embedder) Dimension() int {
	return e.dimension
}

// Model returns the underlying provider's model identifier.
func (e *Embedder) Model() string {
	return e.provider.Model()
}
