package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"
)

// Config represents the service configuration.
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Embedding EmbeddingConfig
	Store     StoreConfig
	Limits    LimitsConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8081"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"60"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// EmbeddingConfig selects the embedding provider and its parameters.
type EmbeddingConfig struct {
	Provider     string `env:"EMBEDDING_PROVIDER"     envDefault:"gemini"`
	Dimension    int    `env:"EMBEDDING_DIMENSION"    envDefault:"3072"`
	CacheSize    int    `env:"CACHE_SIZE"             envDefault:"1000"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL"           envDefault:"gemini-embedding-001"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_EMBEDDING_MODEL" envDefault:"text-embedding-3-large"`
}

// StoreConfig selects the vector store backend.
type StoreConfig struct {
	Backend        string `env:"STORE_BACKEND"   envDefault:"chromem"`
	Path           string `env:"STORE_PATH"      envDefault:"./data/vectors"`
	CollectionName string `env:"COLLECTION_NAME" envDefault:"documents"`
	RedisAddr      string `env:"REDIS_ADDR"      envDefault:"localhost:6379"`
}

// LimitsConfig contains input size and result count ceilings.
type LimitsConfig struct {
	MaxTextLength        int   `env:"MAX_TEXT_LENGTH"        envDefault:"10000"`
	DefaultSearchResults int   `env:"DEFAULT_SEARCH_RESULTS" envDefault:"5"`
	MaxSearchResults     int   `env:"MAX_SEARCH_RESULTS"     envDefault:"50"`
	MaxPDFSizeBytes      int64 `env:"MAX_PDF_SIZE_BYTES"     envDefault:"52428800"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*EmbeddingConfig
	*StoreConfig
	*LimitsConfig
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.Embedding,
		&cfg.Store,
		&cfg.Limits,
	}
}
