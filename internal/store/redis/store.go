// Package redis implements the domain.VectorStore interface using Redis
// Stack's search module (FT.CREATE / FT.SEARCH with a KNN vector field).
package redis

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nadavw/lantern/internal/domain"
)

const (
	redisDialectVersion = 2
	docKeyPrefix        = "doc:"
)

// Store implements domain.VectorStore using Redis vector search.
type Store struct {
	client             *redis.Client
	indexName          string
	embeddingDimension int
	logger             *zap.Logger
}

// NewStore creates a new Redis vector store and ensures the index exists.
func NewStore(client *redis.Client, indexName string, embeddingDimension int, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		client:             client,
		indexName:          indexName,
		embeddingDimension: embeddingDimension,
		logger:             logger,
	}

	if err := s.CreateCollection(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	return s, nil
}

// floatsToBytes converts a float32 slice to its binary representation for the
// Redis vector field.
func floatsToBytes(fs []float32) []byte {
	const bytesPerFloat32 = 4
	buf := make([]byte, len(fs)*bytesPerFloat32)

	for i, f := range fs {
		binary.LittleEndian.PutUint32(buf[i*bytesPerFloat32:], math.Float32bits(f))
	}

	return buf
}

// Upsert stores (vector, text, metadata) as a hash under doc:<id>. HSET
// overwrites, so re-ingesting the same id replaces the record in place.
func (s *Store) Upsert(ctx context.Context, id string, vector []float32, text string, metadata domain.Metadata) error {
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	key := docKeyPrefix + id
	err = s.client.HSet(ctx, key,
		"embedding", floatsToBytes(vector),
		"text", text,
		"metadata", string(metadataJSON),
		"indexed_at", time.Now().Unix(),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to store document %s: %w", id, err)
	}

	s.logger.Debug("document stored", zap.String("key", key))
	return nil
}

// Query returns up to topK nearest neighbors ordered by ascending distance.
func (s *Store) Query(ctx context.Context, vector []float32, topK int) ([]domain.Match, error) {
	query := fmt.Sprintf("*=>[KNN %d @embedding $vec AS score]", topK)

	results, err := s.client.FTSearchWithArgs(ctx, s.indexName, query,
		&redis.FTSearchOptions{
			Return: []redis.FTSearchReturn{
				{FieldName: "text"},
				{FieldName: "metadata"},
				{FieldName: "score"},
			},
			SortBy: []redis.FTSearchSortBy{
				{FieldName: "score", Asc: true},
			},
			LimitOffset:    0,
			Limit:          topK,
			DialectVersion: redisDialectVersion,
			Params: map[string]any{
				"vec": floatsToBytes(vector),
			},
		},
	).Result()
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	matches := make([]domain.Match, 0, len(results.Docs))
	for _, doc := range results.Docs {
		match, ok := s.parseDoc(doc)
		if !ok {
			continue
		}
		matches = append(matches, match)
	}

	return matches, nil
}

func (s *Store) parseDoc(doc redis.Document) (domain.Match, bool) {
	scoreStr, ok := doc.Fields["score"]
	if !ok {
		return domain.Match{}, false
	}

	distance, err := strconv.ParseFloat(scoreStr, 64)
	if err != nil {
		return domain.Match{}, false
	}

	text, ok := doc.Fields["text"]
	if !ok {
		s.logger.Warn("text field missing in search result", zap.String("key", doc.ID))
		return domain.Match{}, false
	}

	metadata := domain.Metadata{}
	if metadataStr, metaOK := doc.Fields["metadata"]; metaOK && metadataStr != "" {
		if unmarshalErr := json.Unmarshal([]byte(metadataStr), &metadata); unmarshalErr != nil {
			s.logger.Warn("failed to unmarshal metadata",
				zap.String("key", doc.ID),
				zap.Error(unmarshalErr))
		}
	}

	// JSON round-trips integers as float64; restore whole numbers so stored
	// counters come back as ints.
	for k, v := range metadata {
		if f, isFloat := v.(float64); isFloat && f == math.Trunc(f) {
			metadata[k] = int(f)
		}
	}

	return domain.Match{
		ID:       trimKeyPrefix(doc.ID),
		Text:     text,
		Metadata: metadata,
		Distance: distance,
	}, true
}

func trimKeyPrefix(key string) string {
	if len(key) > len(docKeyPrefix) && key[:len(docKeyPrefix)] == docKeyPrefix {
		return key[len(docKeyPrefix):]
	}
	return key
}

// Count returns the number of indexed documents.
func (s *Store) Count(ctx context.Context) (int, error) {
	info, err := s.client.FTInfo(ctx, s.indexName).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read index info: %w", err)
	}
	return info.NumDocs, nil
}

// DeleteCollection drops the index together with all indexed documents.
func (s *Store) DeleteCollection(ctx context.Context) error {
	err := s.client.FTDropIndexWithArgs(ctx, s.indexName,
		&redis.FTDropIndexOptions{DeleteDocs: true},
	).Err()
	if err != nil {
		return fmt.Errorf("failed to drop index: %w", err)
	}

	s.logger.Info("search index dropped", zap.String("index", s.indexName))
	return nil
}

// CreateCollection creates the search index if it doesn't exist.
func (s *Store) CreateCollection(ctx context.Context) error {
	// Check if index already exists
	if _, err := s.client.FTInfo(ctx, s.indexName).Result(); err == nil {
		s.logger.Info("search index already exists, skipping creation",
			zap.String("index", s.indexName))
		return nil
	}

	_, err := s.client.FTCreate(ctx, s.indexName,
		&redis.FTCreateOptions{
			OnHash: true,
			Prefix: []any{docKeyPrefix},
		},
		&redis.FieldSchema{
			FieldName: "embedding",
			FieldType: redis.SearchFieldTypeVector,
			VectorArgs: &redis.FTVectorArgs{
				FlatOptions: &redis.FTFlatOptions{
					Type:           "FLOAT32",
					Dim:            s.embeddingDimension,
					DistanceMetric: "COSINE",
				},
			},
		},
		&redis.FieldSchema{
			FieldName: "text",
			FieldType: redis.SearchFieldTypeText,
		},
		&redis.FieldSchema{
			FieldName: "metadata",
			FieldType: redis.SearchFieldTypeText,
			NoIndex:   true,
		},
		&redis.FieldSchema{
			FieldName: "indexed_at",
			FieldType: redis.SearchFieldTypeNumeric,
			Sortable:  true,
		},
	).Result()
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	s.logger.Info("search index created",
		zap.String("index", s.indexName),
		zap.Int("embedding_dimension", s.embeddingDimension))

	return nil
}
