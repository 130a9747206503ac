package domain

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nadavw/lantern/internal/observability"
)

// healthProbeText is embedded to verify provider reachability. It resolves
// through the cache, so repeated health checks cost one provider call.
const healthProbeText = "test connection"

// ServiceOptions carries process-wide configuration for the document service.
type ServiceOptions struct {
	CollectionName   string
	MaxTextLength    int
	MaxSearchResults int
}

// DocumentService orchestrates fingerprinting, embedding, normalization and
// the vector store. It is stateless per call; the embedding cache is the only
// shared state.
type DocumentService struct {
	embedder *Embedder
	store    VectorStore
	cache    *EmbeddingCache
	events   EventPublisher
	opts     ServiceOptions
}

// NewDocumentService creates a new document service.
func NewDocumentService(
	embedder *Embedder,
	store VectorStore,
	cache *EmbeddingCache,
	events EventPublisher,
	opts ServiceOptions,
) *DocumentService {
	return &DocumentService{
		embedder: embedder,
		store:    store,
		cache:    cache,
		events:   events,
		opts:     opts,
	}
}

// Embed returns the embedding vector for text after trimming and validation.
func (s *DocumentService) Embed(ctx context.Context, text string) ([]float32, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: text cannot be empty", ErrEmptyInput)
	}

	if err := s.checkLength(trimmed); err != nil {
		return nil, err
	}

	return s.embedder.Embed(ctx, trimmed)
}

// IngestText normalizes and stores a plain-text document. The document id is
// the fingerprint of the canonical text, so ingesting identical text twice
// yields the same id. If embedding fails nothing is written.
func (s *DocumentService) IngestText(ctx context.Context, text string, metadata Metadata) (*Document, error) {
	canonical, merged, err := NormalizeText(text, metadata)
	if err != nil {
		return nil, err
	}

	return s.ingest(observability.WithSourceType(ctx, SourceTypeText), canonical, merged)
}

// IngestPDF normalizes and stores an extracted PDF document.
func (s *DocumentService) IngestPDF(ctx context.Context, extraction *PDFExtraction, metadata Metadata) (*Document, error) {
	canonical, merged, err := NormalizePDF(extraction, metadata)
	if err != nil {
		return nil, err
	}

	return s.ingest(observability.WithSourceType(ctx, SourceTypePDF), canonical, merged)
}

func (s *DocumentService) ingest(ctx context.Context, canonical string, metadata Metadata) (*Document, error) {
	if err := s.checkLength(canonical); err != nil {
		return nil, err
	}

	vector, err := s.embedder.Embed(ctx, canonical)
	if err != nil {
		return nil, err
	}

	id := Fingerprint(canonical)
	if err := s.store.Upsert(ctx, id, vector, canonical, metadata); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	logger := observability.FromContext(ctx)
	logger.Info("document ingested",
		observability.String("document_id", id),
		observability.Int("text_length", utf8.RuneCountInString(canonical)))

	if s.events != nil {
		s.events.Publish(ctx, "document.ingested", map[string]interface{}{
			"document_id": id,
			"source_type": metadata["source_type"],
			"text_length": utf8.RuneCountInString(canonical),
		})
	}

	return &Document{
		ID:        id,
		Text:      canonical,
		Metadata:  metadata,
		Embedding: vector,
	}, nil
}

// Search embeds the query and returns up to k nearest documents, closest
// first. An empty store yields an empty slice, not an error. The store is
// never asked for more results than it holds.
func (s *DocumentService) Search(ctx context.Context, query string, k int) ([]SearchResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be a positive integer", ErrInvalidArgument)
	}

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: query cannot be empty", ErrEmptyInput)
	}

	if err := s.checkLength(trimmed); err != nil {
		return nil, err
	}

	if s.opts.MaxSearchResults > 0 && k > s.opts.MaxSearchResults {
		k = s.opts.MaxSearchResults
	}

	vector, err := s.embedder.Embed(ctx, trimmed)
	if err != nil {
		return nil, err
	}

	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	if count == 0 {
		return []SearchResult{}, nil
	}

	if k > count {
		k = count
	}

	matches, err := s.store.Query(ctx, vector, k)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	results := make([]SearchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, SearchResult{
			ID:              m.ID,
			Text:            m.Text,
			Metadata:        m.Metadata,
			Distance:        m.Distance,
			SimilarityScore: SimilarityScore(m.Distance),
		})
	}

	logger := observability.FromContext(ctx)
	logger.Info("search completed",
		observability.Int("k", k),
		observability.Int("results", len(results)))

	if s.events != nil {
		s.events.Publish(ctx, "search.completed", map[string]interface{}{
			"query_length": utf8.RuneCountInString(trimmed),
			"results":      len(results),
		})
	}

	return results, nil
}

// ResetCollection deletes and recreates the backing collection. The embedding
// cache is untouched: entries key on text content, not store membership.
func (s *DocumentService) ResetCollection(ctx context.Context) error {
	if err := s.store.DeleteCollection(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}

	if err := s.store.CreateCollection(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}

	observability.FromContext(ctx).Info("collection reset",
		observability.String("collection", s.opts.CollectionName))

	return nil
}

// CollectionInfo returns the collection name, document count and the
// process-wide embedding configuration.
func (s *DocumentService) CollectionInfo(ctx context.Context) (*CollectionInfo, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	return &CollectionInfo{
		CollectionName:     s.opts.CollectionName,
		DocumentCount:      count,
		EmbeddingDimension: s.embedder.Dimension(),
		Model:              s.embedder.Model(),
	}, nil
}

// CacheStats returns the embedding cache counters.
func (s *DocumentService) CacheStats() CacheStats {
	return s.cache.Stats()
}

// ClearCache evicts all cached embeddings and resets the counters.
func (s *DocumentService) ClearCache(ctx context.Context) {
	s.cache.Clear()
	observability.FromContext(ctx).Info("embedding cache cleared")
}

// Health probes the embedding provider and the vector store.
func (s *DocumentService) Health(ctx context.Context) HealthStatus {
	_, providerErr := s.embedder.Embed(ctx, healthProbeText)
	_, storeErr := s.store.Count(ctx)

	return HealthStatus{
		EmbeddingProvider: providerErr == nil,
		VectorStore:       storeErr == nil,
	}
}

func (s *DocumentService) checkLength(text string) error {
	if s.opts.MaxTextLength > 0 && utf8.RuneCountInString(text) > s.opts.MaxTextLength {
		return fmt.Errorf("%w: text exceeds %d characters", ErrTooLarge, s.opts.MaxTextLength)
	}
	return nil
}

// SimilarityScore converts a store distance into a score in (0, 1] for any
// distance >= 0, decreasing monotonically with distance. It is an ordering
// aid, not a probability.
func SimilarityScore(distance float64) float64 {
	return 1 / (1 + distance)
}
