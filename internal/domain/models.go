package domain

// Metadata maps string keys to scalar values (string, int, float64, bool).
// Nested structures are flattened by the normalizer before storage.
type Metadata map[string]any

// Document represents a stored document. The ID is the content fingerprint of
// the canonical text, so ingesting identical text is idempotent.
type Document struct {
	ID        string    `json:"document_id"`
	Text      string    `json:"text"`
	Metadata  Metadata  `json:"metadata"`
	Embedding []float32 `json:"-"`
}

// Match is a raw nearest-neighbor result as reported by the vector store.
type Match struct {
	ID       string
	Text     string
	Metadata Metadata
	Distance float64
}

// SearchResult is a formatted search hit. SimilarityScore is derived from the
// store distance as 1/(1+distance): a value in (0, 1] that orders results, not
// a probability.
type SearchResult struct {
	ID              string   `json:"id"`
	Text            string   `json:"text"`
	Metadata        Metadata `json:"metadata"`
	Distance        float64  `json:"distance"`
	SimilarityScore float64  `json:"similarity_score"`
}

// CacheStats reports embedding cache counters.
type CacheStats struct {
	Hits    uint64  `json:"cache_hits"`
	Misses  uint64  `json:"cache_misses"`
	Size    int     `json:"cache_size"`
	MaxSize int     `json:"cache_maxsize"`
	HitRate float64 `json:"hit_rate"`
}

// CollectionInfo describes the backing collection and its configuration.
type CollectionInfo struct {
	CollectionName     string `json:"collection_name"`
	DocumentCount      int    `json:"document_count"`
	EmbeddingDimension int    `json:"embedding_dimension"`
	Model              string `json:"model"`
}

// HealthStatus reports reachability of the external collaborators.
type HealthStatus struct {
	EmbeddingProvider bool `json:"embedding_provider"`
	VectorStore       bool `json:"vector_store"`
}

// Healthy reports whether every collaborator is reachable.
func (h HealthStatus) Healthy() bool {
	return h.EmbeddingProvider && h.VectorStore
}

// PDFHeader holds the PDF Info-dictionary fields. Empty fields are dropped
// during normalization, not stored as empty strings.
type PDFHeader struct {
	Title            string
	Author           string
	Subject          string
	Creator          string
	Producer         string
	CreationDate     string
	ModificationDate string
}

// PDFExtraction is the output contract of the PDF extractor: plain text plus
// a metadata record.
type PDFExtraction struct {
	Text          string
	Filename      string
	FileSizeBytes int
	PageCount     int
	CharCount     int
	WordCount     int
	Header        PDFHeader
}
