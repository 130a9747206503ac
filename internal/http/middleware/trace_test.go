package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadavw/lantern/internal/observability"
)

func TestTrace_InjectsIdentifiers(t *testing.T) {
	var gotTraceID, gotSpanID, gotRequestID string

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTraceID = observability.GetTraceID(r.Context())
		gotSpanID = observability.GetSpanID(r.Context())
		gotRequestID = observability.GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Trace()(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.NotEmpty(t, gotTraceID)
	require.NotEmpty(t, gotSpanID)
	require.NotEmpty(t, gotRequestID)
	assert.Equal(t, gotTraceID, rec.Header().Get("X-Trace-Id"))
	assert.Equal(t, gotSpanID, rec.Header().Get("X-Span-Id"))
	assert.Equal(t, gotRequestID, rec.Header().Get("X-Request-Id"))
}

func TestTrace_FreshIdentifiersPerRequest(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := Trace()(inner)

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, first.Header().Get("X-Trace-Id"), second.Header().Get("X-Trace-Id"))
	assert.NotEqual(t, first.Header().Get("X-Request-Id"), second.Header().Get("X-Request-Id"))
}
