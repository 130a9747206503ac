package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nadavw/lantern/internal/config"
	"github.com/nadavw/lantern/internal/domain"
	"github.com/nadavw/lantern/internal/mocks"
)

const testDimension = 4

type handlerFixture struct {
	provider  *mocks.MockEmbeddingProvider
	store     *mocks.MockVectorStore
	extractor *mocks.MockPDFExtractor
	service   *domain.DocumentService
	handler   *Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	provider := mocks.NewMockEmbeddingProvider(t)
	provider.EXPECT().Name().Return("echo").Maybe()

	store := mocks.NewMockVectorStore(t)
	extractor := mocks.NewMockPDFExtractor(t)

	cache, err := domain.NewEmbeddingCache(100)
	require.NoError(t, err)

	embedder := domain.NewEmbedder(provider, cache, testDimension)
	service := domain.NewDocumentService(embedder, store, cache, nil, domain.ServiceOptions{
		CollectionName:   "documents",
		MaxTextLength:    10000,
		MaxSearchResults: 50,
	})

	limits := &config.LimitsConfig{
		MaxTextLength:        10000,
		DefaultSearchResults: 5,
		MaxSearchResults:     50,
		MaxPDFSizeBytes:      1 << 20,
	}

	return &handlerFixture{
		provider:  provider,
		store:     store,
		extractor: extractor,
		service:   service,
		handler:   NewHandler(service, extractor, limits),
	}
}

func (f *handlerFixture) expectEmbed(text string, vector []float32) {
	f.provider.EXPECT().
		EmbedOne(mock.Anything, text, testDimension, domain.TaskRetrievalDocument).
		Return(vector, nil).
		Once()
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandleEmbed(t *testing.T) {
	f := newHandlerFixture(t)
	f.expectEmbed("hello world", []float32{0.1, 0.2, 0.3, 0.4})

	rec := postJSON(t, f.handler.HandleEmbed, "/api/v1/embed", map[string]string{"text": "hello world"})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "hello world", body["text"])
	assert.Equal(t, float64(testDimension), body["dimension"])
	assert.Len(t, body["embedding"], testDimension)
}

func TestHandleEmbed_EmptyText(t *testing.T) {
	f := newHandlerFixture(t)

	rec := postJSON(t, f.handler.HandleEmbed, "/api/v1/embed", map[string]string{"text": "   "})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "empty")
}

func TestHandleEmbed_MethodNotAllowed(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/embed", nil)
	rec := httptest.NewRecorder()
	f.handler.HandleEmbed(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleEmbed_InvalidJSON(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/embed", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	f.handler.HandleEmbed(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEmbed_ProviderFailure(t *testing.T) {
	f := newHandlerFixture(t)
	f.provider.EXPECT().
		EmbedOne(mock.Anything, "text", testDimension, domain.TaskRetrievalDocument).
		Return(nil, errors.New("quota exceeded")).
		Once()

	rec := postJSON(t, f.handler.HandleEmbed, "/api/v1/embed", map[string]string{"text": "text"})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleIngestText(t *testing.T) {
	f := newHandlerFixture(t)

	text := "The lighthouse keeper lived alone on the rocky island"
	f.expectEmbed(text, []float32{1, 2, 3, 4})
	f.store.EXPECT().
		Upsert(mock.Anything, domain.Fingerprint(text), []float32{1, 2, 3, 4}, text, mock.Anything).
		Return(nil).
		Once()

	rec := postJSON(t, f.handler.HandleIngestText, "/api/v1/documents/text", map[string]any{
		"text":     text,
		"metadata": map[string]any{"category": "story"},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, domain.Fingerprint(text), body["document_id"])
	assert.Equal(t, text, body["text"])

	metadata, ok := body["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "story", metadata["category"])
	assert.Equal(t, "text", metadata["source_type"])
}

func TestHandleIngestText_TooLong(t *testing.T) {
	f := newHandlerFixture(t)

	rec := postJSON(t, f.handler.HandleIngestText, "/api/v1/documents/text", map[string]any{
		"text": strings.Repeat("a", 10001),
	})

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandleSearch_DefaultK(t *testing.T) {
	f := newHandlerFixture(t)

	vector := []float32{1, 0, 0, 0}
	f.expectEmbed("lighthouse", vector)
	f.store.EXPECT().Count(mock.Anything).Return(20, nil).Once()
	f.store.EXPECT().
		Query(mock.Anything, vector, 5).
		Return([]domain.Match{{ID: "a", Text: "match", Distance: 0.25}}, nil).
		Once()

	rec := postJSON(t, f.handler.HandleSearch, "/api/v1/search", map[string]any{"query": "lighthouse"})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "lighthouse", body["query"])
	assert.Equal(t, float64(1), body["count"])

	results, ok := body["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 1)

	hit, ok := results[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a", hit["id"])
	assert.InDelta(t, 0.8, hit["similarity_score"], 1e-9)
}

func TestHandleSearch_ExplicitK(t *testing.T) {
	f := newHandlerFixture(t)

	vector := []float32{1, 0, 0, 0}
	f.expectEmbed("query text", vector)
	f.store.EXPECT().Count(mock.Anything).Return(20, nil).Once()
	f.store.EXPECT().
		Query(mock.Anything, vector, 2).
		Return([]domain.Match{{ID: "a"}, {ID: "b"}}, nil).
		Once()

	rec := postJSON(t, f.handler.HandleSearch, "/api/v1/search", map[string]any{"query": "query text", "k": 2})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decodeBody(t, rec)["count"])
}

func TestHandleSearch_InvalidK(t *testing.T) {
	f := newHandlerFixture(t)

	rec := postJSON(t, f.handler.HandleSearch, "/api/v1/search", map[string]any{"query": "q", "k": -1})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSearch_EmptyQuery(t *testing.T) {
	f := newHandlerFixture(t)

	rec := postJSON(t, f.handler.HandleSearch, "/api/v1/search", map[string]any{"query": ""})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func pdfUploadRequest(t *testing.T, filename, metadata string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	if metadata != "" {
		require.NoError(t, writer.WriteField("metadata", metadata))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/pdf", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestHandleIngestPDF(t *testing.T) {
	f := newHandlerFixture(t)

	content := []byte("%PDF-1.4 fake body")
	extraction := &domain.PDFExtraction{
		Text:          "Extracted body text",
		Filename:      "report.pdf",
		FileSizeBytes: len(content),
		PageCount:     2,
		CharCount:     19,
		WordCount:     3,
	}

	f.extractor.EXPECT().Validate(content).Return(true).Once()
	f.extractor.EXPECT().Extract(mock.Anything, content, "report.pdf").Return(extraction, nil).Once()

	f.expectEmbed("Extracted body text", []float32{1, 2, 3, 4})
	f.store.EXPECT().
		Upsert(mock.Anything, domain.Fingerprint("Extracted body text"), []float32{1, 2, 3, 4}, "Extracted body text", mock.Anything).
		Return(nil).
		Once()

	rec := httptest.NewRecorder()
	f.handler.HandleIngestPDF(rec, pdfUploadRequest(t, "report.pdf", `{"department":"finance"}`, content))

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, domain.Fingerprint("Extracted body text"), body["document_id"])

	metadata, ok := body["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "finance", metadata["department"])
	assert.Equal(t, "pdf", metadata["source_type"])

	info, ok := body["extraction_info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), info["pages_processed"])
	assert.Equal(t, float64(3), info["total_words"])
}

func TestHandleIngestPDF_WrongExtension(t *testing.T) {
	f := newHandlerFixture(t)

	rec := httptest.NewRecorder()
	f.handler.HandleIngestPDF(rec, pdfUploadRequest(t, "notes.txt", "", []byte("plain text")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleIngestPDF_InvalidMetadataJSON(t *testing.T) {
	f := newHandlerFixture(t)

	rec := httptest.NewRecorder()
	f.handler.HandleIngestPDF(rec, pdfUploadRequest(t, "report.pdf", "{broken", []byte("%PDF-1.4")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "metadata")
}

func TestHandleIngestPDF_InvalidFile(t *testing.T) {
	f := newHandlerFixture(t)

	content := []byte("not really a pdf")
	f.extractor.EXPECT().Validate(content).Return(false).Once()

	rec := httptest.NewRecorder()
	f.handler.HandleIngestPDF(rec, pdfUploadRequest(t, "fake.pdf", "", content))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleIngestPDF_OversizedUpload(t *testing.T) {
	f := newHandlerFixture(t)

	// A handler with a tiny upload ceiling; the multipart framing alone
	// exceeds it, so the body read is cut off mid-parse.
	handler := NewHandler(f.service, f.extractor, &config.LimitsConfig{
		MaxTextLength:        10000,
		DefaultSearchResults: 5,
		MaxSearchResults:     50,
		MaxPDFSizeBytes:      64,
	})

	content := bytes.Repeat([]byte("%PDF-1.4 padding "), 16)
	rec := httptest.NewRecorder()
	handler.HandleIngestPDF(rec, pdfUploadRequest(t, "big.pdf", "", content))

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "exceeds 64 bytes")
}

func TestHandleIngestPDF_MissingFile(t *testing.T) {
	f := newHandlerFixture(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/pdf", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	f.handler.HandleIngestPDF(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCollectionInfo(t *testing.T) {
	f := newHandlerFixture(t)

	f.provider.EXPECT().Model().Return("echo-embedding-001").Once()
	f.store.EXPECT().Count(mock.Anything).Return(7, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/collection/info", nil)
	rec := httptest.NewRecorder()
	f.handler.HandleCollectionInfo(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "documents", body["collection_name"])
	assert.Equal(t, float64(7), body["document_count"])
	assert.Equal(t, float64(testDimension), body["embedding_dimension"])
	assert.Equal(t, "echo-embedding-001", body["model"])
}

func TestHandleResetCollection(t *testing.T) {
	f := newHandlerFixture(t)

	f.store.EXPECT().DeleteCollection(mock.Anything).Return(nil).Once()
	f.store.EXPECT().CreateCollection(mock.Anything).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/collection/reset", nil)
	rec := httptest.NewRecorder()
	f.handler.HandleResetCollection(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["message"], "reset")
}

func TestHandleCacheStats(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cache/stats", nil)
	rec := httptest.NewRecorder()
	f.handler.HandleCacheStats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(0), body["cache_hits"])
	assert.Equal(t, float64(100), body["cache_maxsize"])
}

func TestHandleClearCache(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cache/clear", nil)
	rec := httptest.NewRecorder()
	f.handler.HandleClearCache(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["message"], "cleared")
}

func TestHandleHealth(t *testing.T) {
	f := newHandlerFixture(t)

	f.expectEmbed("test connection", []float32{1, 2, 3, 4})
	f.store.EXPECT().Count(mock.Anything).Return(0, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	f.handler.HandleHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
}

func TestHandleHealth_Degraded(t *testing.T) {
	f := newHandlerFixture(t)

	f.expectEmbed("test connection", []float32{1, 2, 3, 4})
	f.store.EXPECT().Count(mock.Anything).Return(0, errors.New("connection refused")).Once()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	f.handler.HandleHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "degraded", decodeBody(t, rec)["status"])
}
