package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"

	"github.com/nadavw/lantern/internal/config"
	"github.com/nadavw/lantern/internal/domain"
	"github.com/nadavw/lantern/internal/observability"
)

// Handler handles HTTP requests.
type Handler struct {
	service   *domain.DocumentService
	extractor domain.PDFExtractor
	limits    config.LimitsConfig
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(service *domain.DocumentService, extractor domain.PDFExtractor, limits *config.LimitsConfig) *Handler {
	return &Handler{
		service:   service,
		extractor: extractor,
		limits:    *limits,
	}
}

type embedRequest struct {
	Text string `json:"text"`
}

type embedResponse struct {
	Text      string    `json:"text"`
	Embedding []float32 `json:"embedding"`
	Dimension int       `json:"dimension"`
}

type ingestTextRequest struct {
	Text     string          `json:"text"`
	Metadata domain.Metadata `json:"metadata"`
}

type ingestResponse struct {
	DocumentID     string          `json:"document_id"`
	Text           string          `json:"text"`
	Metadata       domain.Metadata `json:"metadata"`
	Message        string          `json:"message"`
	ExtractionInfo map[string]any  `json:"extraction_info,omitempty"`
}

type searchRequest struct {
	Query string `json:"query"`
	K     *int   `json:"k"`
}

type searchResponse struct {
	Query   string                `json:"query"`
	Results []domain.SearchResult `json:"results"`
	Count   int                   `json:"count"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type healthResponse struct {
	Status   string              `json:"status"`
	Services domain.HealthStatus `json:"services"`
}

// HandleEmbed generates an embedding for the submitted text.
func (h *Handler) HandleEmbed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req embedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", domain.ErrInvalidArgument, err))
		return
	}

	vector, err := h.service.Embed(ctx, req.Text)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, embedResponse{
		Text:      strings.TrimSpace(req.Text),
		Embedding: vector,
		Dimension: len(vector),
	})
}

// HandleIngestText adds a plain-text document to the collection.
func (h *Handler) HandleIngestText(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ingestTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", domain.ErrInvalidArgument, err))
		return
	}

	doc, err := h.service.IngestText(ctx, req.Text, req.Metadata)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, ingestResponse{
		DocumentID: doc.ID,
		Text:       doc.Text,
		Metadata:   doc.Metadata,
		Message:    "Text document added successfully",
	})
}

// HandleIngestPDF accepts a multipart PDF upload, extracts its text and adds
// the document to the collection. The optional metadata form field carries a
// JSON object merged over the derived metadata.
func (h *Handler) HandleIngestPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Reject oversized uploads while reading the body, not after.
	r.Body = http.MaxBytesReader(w, r.Body, h.limits.MaxPDFSizeBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(ctx, w, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrTooLarge, h.limits.MaxPDFSizeBytes))
			return
		}
		writeError(ctx, w, fmt.Errorf("%w: no file provided", domain.ErrInvalidArgument))
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		writeError(ctx, w, fmt.Errorf("%w: only PDF files are supported", domain.ErrUnsupportedFormat))
		return
	}

	metadata := domain.Metadata{}
	if metadataStr := r.FormValue("metadata"); metadataStr != "" {
		if err := json.Unmarshal([]byte(metadataStr), &metadata); err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid metadata JSON format", domain.ErrInvalidArgument))
			return
		}
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: failed to read upload: %v", domain.ErrInvalidArgument, err))
		return
	}

	if !h.extractor.Validate(data) {
		writeError(ctx, w, fmt.Errorf("%w: invalid PDF file", domain.ErrUnsupportedFormat))
		return
	}

	extraction, err := h.extractor.Extract(ctx, data, header.Filename)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	doc, err := h.service.IngestPDF(ctx, extraction, metadata)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, ingestResponse{
		DocumentID: doc.ID,
		Text:       responsePreview(doc.Text),
		Metadata:   doc.Metadata,
		Message:    "PDF document processed and added successfully",
		ExtractionInfo: map[string]any{
			"pages_processed":  extraction.PageCount,
			"total_characters": extraction.CharCount,
			"total_words":      extraction.WordCount,
			"file_size_mb":     math.Round(float64(extraction.FileSizeBytes)/(1024*1024)*100) / 100,
		},
	})
}

// HandleSearch performs similarity search over the collection.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", domain.ErrInvalidArgument, err))
		return
	}

	k := h.limits.DefaultSearchResults
	if req.K != nil {
		k = *req.K
	}

	results, err := h.service.Search(ctx, req.Query, k)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, searchResponse{
		Query:   strings.TrimSpace(req.Query),
		Results: results,
		Count:   len(results),
	})
}

// HandleCollectionInfo returns collection statistics.
func (h *Handler) HandleCollectionInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	info, err := h.service.CollectionInfo(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, info)
}

// HandleResetCollection deletes and recreates the collection.
func (h *Handler) HandleResetCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.service.ResetCollection(ctx); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, messageResponse{Message: "Collection reset successfully"})
}

// HandleCacheStats returns embedding cache statistics.
func (h *Handler) HandleCacheStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(ctx, w, http.StatusOK, h.service.CacheStats())
}

// HandleClearCache clears the embedding cache.
func (h *Handler) HandleClearCache(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.service.ClearCache(ctx)
	writeJSON(ctx, w, http.StatusOK, messageResponse{Message: "Cache cleared successfully"})
}

// HandleHealth reports collaborator reachability.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := h.service.Health(ctx)

	state := "healthy"
	if !status.Healthy() {
		state = "degraded"
	}

	writeJSON(ctx, w, http.StatusOK, healthResponse{
		Status:   state,
		Services: status,
	})
}

// responsePreview truncates document text for ingest responses; the full text
// stays in the store.
func responsePreview(text string) string {
	const maxLen = 500
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}

// writeError maps the domain failure taxonomy to HTTP status codes. The
// mapping lives here only; the domain reports typed failures, not statuses.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	logger := observability.FromContext(ctx)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrEmptyInput),
		errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrUnsupportedFormat):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrProvider), errors.Is(err, domain.ErrStore):
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", observability.Error(err))
	} else {
		logger.Info("request rejected", observability.Error(err))
	}

	writeJSON(ctx, w, status, map[string]string{"error": err.Error()})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Status already written, can't change it, just log.
		observability.FromContext(ctx).Error("failed to encode response",
			observability.Error(err))
	}
}
