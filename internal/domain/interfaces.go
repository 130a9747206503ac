package domain

import "context"

// Task hints passed to the embedding provider. The service embeds documents
// and queries with the same hint so that identical text always resolves to the
// same cached vector.
const (
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
)

// EmbeddingProvider maps text to a fixed-dimension vector via a remote model.
type EmbeddingProvider interface {
	// EmbedOne returns the embedding of a single text, or an error. The
	// caller validates the vector length against the configured dimension.
	EmbedOne(ctx context.Context, text string, dimension int, taskHint string) ([]float32, error)

	// Name returns the provider identifier.
	Name() string

	// Model returns the embedding model identifier.
	Model() string
}

// ProviderRegistry manages available embedding providers.
type ProviderRegistry interface {
	// Register adds a provider to the registry.
	Register(ctx context.Context, provider EmbeddingProvider) error

	// Get retrieves a provider by name.
	Get(ctx context.Context, providerName string) (EmbeddingProvider, error)

	// List returns all available provider names.
	List(ctx context.Context) ([]string, error)
}

// VectorStore is an opaque nearest-neighbor index over document embeddings.
type VectorStore interface {
	// Upsert stores (vector, text, metadata) under the given document id,
	// replacing any previous record with the same id.
	Upsert(ctx context.Context, id string, vector []float32, text string, metadata Metadata) error

	// Query returns up to topK nearest neighbors of the vector, closest
	// first. The caller must not ask for more results than Count reports.
	Query(ctx context.Context, vector []float32, topK int) ([]Match, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)

	// DeleteCollection removes the backing collection and all documents.
	DeleteCollection(ctx context.Context) error

	// CreateCollection creates the backing collection if it does not exist.
	CreateCollection(ctx context.Context) error
}

// PDFExtractor turns raw PDF bytes into plain text plus a metadata record.
type PDFExtractor interface {
	// Extract parses the PDF and returns its cleaned text and metadata.
	Extract(ctx context.Context, data []byte, filename string) (*PDFExtraction, error)

	// Validate checks for a recognizable PDF signature and at least one page.
	Validate(data []byte) bool
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
