// Package echo provides a deterministic in-process embedding provider. It
// implements the domain.EmbeddingProvider interface without making external
// API calls, producing stable pseudo-embeddings for testing and development.
package echo

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"math"
)

const (
	providerName = "echo"
	modelName    = "echo-embedding-001"
)

// Provider implements the domain.EmbeddingProvider interface for testing.
type Provider struct{}

// NewProvider creates a new echo provider.
// No configuration is required as this provider operates entirely in-memory.
func NewProvider() *Provider {
	return &Provider{}
}

// EmbedOne derives a deterministic unit-length vector from the text content.
// Identical text always yields an identical vector; the task hint does not
// participate so documents and queries of the same text agree.
func (p *Provider) EmbedOne(_ context.Context, text string, dimension int, _ string) ([]float32, error) {
	if text == "" {
		return nil, errors.New("text cannot be empty")
	}

	if dimension <= 0 {
		return nil, errors.New("dimension must be positive")
	}

	seed := sha256.Sum256([]byte(text))

	vector := make([]float32, dimension)
	var norm float64

	// Stretch the digest over the requested dimension by rehashing it with a
	// block counter, then map each 4-byte window to (-1, 1).
	block := seed
	for i := 0; i < dimension; i++ {
		word := i % (len(block) / 4)
		if i > 0 && word == 0 {
			block = sha256.Sum256(block[:])
		}
		bits := binary.LittleEndian.Uint32(block[word*4 : word*4+4])
		v := float64(bits)/float64(math.MaxUint32)*2 - 1
		vector[i] = float32(v)
		norm += v * v
	}

	// Normalize so cosine distances behave like a real embedding model's.
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vector {
			vector[i] *= scale
		}
	}

	return vector, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return providerName
}

// Model returns the embedding model identifier.
func (p *Provider) Model() string {
	return modelName
}
