// Package chromem implements the domain.VectorStore interface on top of
// chromem-go, an embedded vector database persisted to disk. It is the
// default backend: no external service is required.
package chromem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sync"

	chromem "github.com/philippgille/chromem-go"
	"go.uber.org/zap"

	"github.com/nadavw/lantern/internal/domain"
)

// Config holds configuration for the chromem vector store.
type Config struct {
	Path           string
	CollectionName string
	Compress       bool
}

// Store implements domain.VectorStore using chromem-go.
type Store struct {
	db     *chromem.DB
	cfg    Config
	logger *zap.Logger

	mu         sync.RWMutex
	collection *chromem.Collection
}

// NewStore opens (or creates) the persistent database and its collection.
func NewStore(cfg Config, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.Path == "" {
		cfg.Path = "./data/vectors"
	}
	if cfg.CollectionName == "" {
		cfg.CollectionName = "documents"
	}

	if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory %s: %w", cfg.Path, err)
	}

	db, err := chromem.NewPersistentDB(cfg.Path, cfg.Compress)
	if err != nil {
		return nil, fmt.Errorf("opening chromem DB: %w", err)
	}

	s := &Store{
		db:     db,
		cfg:    cfg,
		logger: logger,
	}

	if err := s.CreateCollection(context.Background()); err != nil {
		return nil, err
	}

	logger.Info("chromem store initialized",
		zap.String("path", cfg.Path),
		zap.String("collection", cfg.CollectionName))

	return s, nil
}

// externalEmbeddingsOnly rejects implicit embedding computation. Every vector
// flows in from the embedder, so chromem must never call out on its own.
func externalEmbeddingsOnly(context.Context, string) ([]float32, error) {
	return nil, errors.New("embeddings are computed externally")
}

// CreateCollection creates the backing collection if it does not exist.
func (s *Store) CreateCollection(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection, err := s.db.GetOrCreateCollection(s.cfg.CollectionName, nil, externalEmbeddingsOnly)
	if err != nil {
		return fmt.Errorf("creating collection %s: %w", s.cfg.CollectionName, err)
	}

	s.collection = collection
	return nil
}

// DeleteCollection removes the collection and all its documents.
func (s *Store) DeleteCollection(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.DeleteCollection(s.cfg.CollectionName); err != nil {
		return fmt.Errorf("deleting collection %s: %w", s.cfg.CollectionName, err)
	}

	s.collection = nil
	return nil
}

func (s *Store) getCollection() (*chromem.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.collection == nil {
		return nil, errors.New("collection not initialized")
	}
	return s.collection, nil
}

// Upsert stores (vector, text, metadata) under the given document id.
// chromem keys documents by id, so re-adding replaces the previous record.
func (s *Store) Upsert(ctx context.Context, id string, vector []float32, text string, metadata domain.Metadata) error {
	collection, err := s.getCollection()
	if err != nil {
		return err
	}

	doc := chromem.Document{
		ID:        id,
		Metadata:  encodeMetadata(metadata),
		Embedding: vector,
		Content:   text,
	}

	if err := collection.AddDocument(ctx, doc); err != nil {
		return fmt.Errorf("adding document %s: %w", id, err)
	}

	s.logger.Debug("document stored", zap.String("id", id))
	return nil
}

// Query returns up to topK nearest neighbors, closest first. chromem reports
// cosine similarity; the distance handed back is 1 - similarity.
func (s *Store) Query(ctx context.Context, vector []float32, topK int) ([]domain.Match, error) {
	collection, err := s.getCollection()
	if err != nil {
		return nil, err
	}

	results, err := collection.QueryEmbedding(ctx, vector, topK, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("querying collection: %w", err)
	}

	matches := make([]domain.Match, len(results))
	for i, r := range results {
		matches[i] = domain.Match{
			ID:       r.ID,
			Text:     r.Content,
			Metadata: decodeMetadata(r.Metadata),
			Distance: float64(1 - r.Similarity),
		}
	}

	return matches, nil
}

// Count returns the number of stored documents.
func (s *Store) Count(_ context.Context) (int, error) {
	collection, err := s.getCollection()
	if err != nil {
		return 0, err
	}
	return collection.Count(), nil
}

// encodeMetadata converts scalar metadata to chromem's string map. Values are
// JSON-encoded so that a caller-supplied string like "2024" keeps its type
// through a round-trip instead of decoding as a number.
func encodeMetadata(metadata domain.Metadata) map[string]string {
	if len(metadata) == 0 {
		return nil
	}

	encoded := make(map[string]string, len(metadata))
	for k, v := range metadata {
		b, err := json.Marshal(v)
		if err != nil {
			encoded[k] = fmt.Sprint(v)
			continue
		}
		encoded[k] = string(b)
	}
	return encoded
}

// decodeMetadata restores scalar types from chromem's string map. JSON
// round-trips integers as float64; whole numbers come back as ints so stored
// counters keep their type.
func decodeMetadata(metadata map[string]string) domain.Metadata {
	if len(metadata) == 0 {
		return domain.Metadata{}
	}

	decoded := make(domain.Metadata, len(metadata))
	for k, v := range metadata {
		var value any
		if err := json.Unmarshal([]byte(v), &value); err != nil {
			decoded[k] = v
			continue
		}
		if f, ok := value.(float64); ok && f == math.Trunc(f) {
			decoded[k] = int(f)
			continue
		}
		decoded[k] = value
	}
	return decoded
}
