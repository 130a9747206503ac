package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, 60, cfg.Server.WriteTimeout)

	assert.Equal(t, "gemini", cfg.Embedding.Provider)
	assert.Equal(t, 3072, cfg.Embedding.Dimension)
	assert.Equal(t, 1000, cfg.Embedding.CacheSize)
	assert.Equal(t, "gemini-embedding-001", cfg.Embedding.GeminiModel)
	assert.Equal(t, "text-embedding-3-large", cfg.Embedding.OpenAIModel)

	assert.Equal(t, "chromem", cfg.Store.Backend)
	assert.Equal(t, "documents", cfg.Store.CollectionName)
	assert.Equal(t, "localhost:6379", cfg.Store.RedisAddr)

	assert.Equal(t, 10000, cfg.Limits.MaxTextLength)
	assert.Equal(t, 5, cfg.Limits.DefaultSearchResults)
	assert.Equal(t, 50, cfg.Limits.MaxSearchResults)
	assert.Equal(t, int64(52428800), cfg.Limits.MaxPDFSizeBytes)

	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.CORS.AllowCredentials)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("EMBEDDING_PROVIDER", "openai")
	t.Setenv("EMBEDDING_DIMENSION", "1536")
	t.Setenv("CACHE_SIZE", "250")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("COLLECTION_NAME", "articles")
	t.Setenv("MAX_TEXT_LENGTH", "2000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "openai", cfg.Embedding.Provider)
	assert.Equal(t, 1536, cfg.Embedding.Dimension)
	assert.Equal(t, 250, cfg.Embedding.CacheSize)
	assert.Equal(t, "redis", cfg.Store.Backend)
	assert.Equal(t, "articles", cfg.Store.CollectionName)
	assert.Equal(t, 2000, cfg.Limits.MaxTextLength)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestParseDependenciesConfig(t *testing.T) {
	cfg := Load()
	deps := ParseDependenciesConfig(cfg)

	assert.Same(t, &cfg.Server, deps.ServerConfig)
	assert.Same(t, &cfg.Embedding, deps.EmbeddingConfig)
	assert.Same(t, &cfg.Store, deps.StoreConfig)
	assert.Same(t, &cfg.Limits, deps.LimitsConfig)
}
