package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/nadavw/lantern/internal/config"
	"github.com/nadavw/lantern/internal/domain"
	"github.com/nadavw/lantern/internal/http"
	"github.com/nadavw/lantern/internal/http/middleware"
	"github.com/nadavw/lantern/internal/observability"
	"github.com/nadavw/lantern/internal/pdf"
	"github.com/nadavw/lantern/internal/provider/echo"
	"github.com/nadavw/lantern/internal/provider/gemini"
	"github.com/nadavw/lantern/internal/provider/openai"
	"github.com/nadavw/lantern/internal/provider/registry"
	chromemstore "github.com/nadavw/lantern/internal/store/chromem"
	redisstore "github.com/nadavw/lantern/internal/store/redis"
)

// ErrProviderNotConfigured indicates that a provider is not configured and should be skipped.
var ErrProviderNotConfigured = errors.New("provider not configured")

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *http.Server) {
		if err := server.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

//nolint:funlen // Container wiring is linear and clearer in one place
func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func() domain.EventPublisher {
		return observability.NewEventBus(slog.Default())
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	// Provider Registry
	if err := container.Provide(func() domain.ProviderRegistry {
		return registry.NewRegistry()
	}); err != nil {
		log.Fatalf("Failed to provide registry: %v", err)
	}

	// Gemini Provider
	if err := container.Provide(func(cfg *config.EmbeddingConfig) (*gemini.Provider, error) {
		if cfg.GeminiAPIKey == "" {
			return nil, ErrProviderNotConfigured
		}

		return gemini.NewProvider(gemini.Config{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		})
	}); err != nil {
		log.Fatalf("Failed to provide Gemini provider: %v", err)
	}

	// OpenAI Provider
	if err := container.Provide(func(cfg *config.EmbeddingConfig) (*openai.Provider, error) {
		if cfg.OpenAIAPIKey == "" {
			return nil, ErrProviderNotConfigured
		}

		return openai.NewProvider(openai.Config{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		})
	}); err != nil {
		log.Fatalf("Failed to provide OpenAI provider: %v", err)
	}

	// Register providers with registry (invoked for side effects). The echo
	// provider is always available for local development.
	if err := container.Invoke(func(reg domain.ProviderRegistry) error {
		return reg.Register(context.Background(), echo.NewProvider())
	}); err != nil {
		log.Fatalf("Failed to register echo provider: %v", err)
	}
	registerOptional(container, "Gemini", func(reg domain.ProviderRegistry, provider *gemini.Provider) error {
		return reg.Register(context.Background(), provider)
	})
	registerOptional(container, "OpenAI", func(reg domain.ProviderRegistry, provider *openai.Provider) error {
		return reg.Register(context.Background(), provider)
	})

	// Active provider selected by configuration.
	if err := container.Provide(func(cfg *config.EmbeddingConfig, reg domain.ProviderRegistry) (domain.EmbeddingProvider, error) {
		provider, err := reg.Get(context.Background(), cfg.Provider)
		if err != nil {
			return nil, fmt.Errorf("embedding provider %q is not available: %w", cfg.Provider, err)
		}
		return provider, nil
	}); err != nil {
		log.Fatalf("Failed to provide active provider: %v", err)
	}

	// Embedding cache and embedder
	if err := container.Provide(func(cfg *config.EmbeddingConfig) (*domain.EmbeddingCache, error) {
		return domain.NewEmbeddingCache(cfg.CacheSize)
	}); err != nil {
		log.Fatalf("Failed to provide embedding cache: %v", err)
	}
	if err := container.Provide(func(
		provider domain.EmbeddingProvider,
		cache *domain.EmbeddingCache,
		cfg *config.EmbeddingConfig,
	) *domain.Embedder {
		return domain.NewEmbedder(provider, cache, cfg.Dimension)
	}); err != nil {
		log.Fatalf("Failed to provide embedder: %v", err)
	}

	// Vector store backend
	if err := container.Provide(func(
		storeCfg *config.StoreConfig,
		embedCfg *config.EmbeddingConfig,
		logger *zap.Logger,
	) (domain.VectorStore, error) {
		switch storeCfg.Backend {
		case "redis":
			client := goredis.NewClient(&goredis.Options{Addr: storeCfg.RedisAddr})
			return redisstore.NewStore(client, storeCfg.CollectionName, embedCfg.Dimension, logger)
		case "chromem":
			return chromemstore.NewStore(chromemstore.Config{
				Path:           storeCfg.Path,
				CollectionName: storeCfg.CollectionName,
			}, logger)
		default:
			return nil, fmt.Errorf("unknown store backend: %s", storeCfg.Backend)
		}
	}); err != nil {
		log.Fatalf("Failed to provide vector store: %v", err)
	}

	// PDF extraction
	if err := container.Provide(func(limits *config.LimitsConfig, logger *zap.Logger) domain.PDFExtractor {
		return pdf.NewExtractor(limits.MaxPDFSizeBytes, logger)
	}); err != nil {
		log.Fatalf("Failed to provide PDF extractor: %v", err)
	}

	// Domain Services
	if err := container.Provide(func(
		embedder *domain.Embedder,
		store domain.VectorStore,
		cache *domain.EmbeddingCache,
		events domain.EventPublisher,
		storeCfg *config.StoreConfig,
		limits *config.LimitsConfig,
	) *domain.DocumentService {
		return domain.NewDocumentService(embedder, store, cache, events, domain.ServiceOptions{
			CollectionName:   storeCfg.CollectionName,
			MaxTextLength:    limits.MaxTextLength,
			MaxSearchResults: limits.MaxSearchResults,
		})
	}); err != nil {
		log.Fatalf("Failed to provide document service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(func(cfg *config.CORSConfig) middleware.Middleware {
		return middleware.BuildMiddlewareChain(cfg)
	}); err != nil {
		log.Fatalf("Failed to provide middleware: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

// registerOptional invokes a registration function, tolerating providers that
// are not configured.
func registerOptional(container *dig.Container, name string, fn interface{}) {
	if err := container.Invoke(fn); err != nil {
		if errors.Is(err, ErrProviderNotConfigured) {
			return
		}
		log.Fatalf("Failed to register %s provider: %v", name, err)
	}
}
