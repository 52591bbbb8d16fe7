package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/futig/resignation-backend/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8000"`
	HandlerTimeout  time.Duration `env:"HANDLER_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// External service configurations
	LLMConnectorCfg          LLMConnectorConfig          `envPrefix:"LLM_"`
	GeminiCfg                GeminiConfig                `envPrefix:"GEMINI_"`
	NotificationConnectorCfg NotificationConnectorConfig `envPrefix:"NOTIFY_"`

	// Pipeline configuration
	ContractOutputLanguage string `env:"CONTRACT_OUTPUT_LANGUAGE" envDefault:"Traditional Chinese"`
	Timezone               string `env:"TIMEZONE"`

	// Logging configuration
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// File upload configuration
	FileUploadCfg FileUploadConfig `envPrefix:"FILE_UPLOAD_"`

	// Rate limiting configuration
	RateLimitCfg RateLimitConfig `envPrefix:"RATE_LIMIT_"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// LLMConnectorConfig is the process-wide model configuration. It is read
// once at startup and never changed afterwards.
type LLMConnectorConfig struct {
	HTTPClientConfig
	Provider           string               `env:"PROVIDER" envDefault:"openai"`
	APIKey             string               `env:"API_KEY"`
	Model              string               `env:"MODEL" envDefault:"gpt-4"`
	Temperature        float32              `env:"TEMPERATURE" envDefault:"0.3"`
	MaxRetries         uint                 `env:"MAX_RETRIES" envDefault:"2"`
	CompletionEndpoint string               `env:"COMPLETION_ENDPOINT" envDefault:"/v1/chat/completions"`
	Retry              pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// GeminiConfig selects the genai backend when LLM_PROVIDER=gemini.
type GeminiConfig struct {
	Model     string `env:"MODEL" envDefault:"gemini-2.5-flash"`
	UseVertex bool   `env:"USE_VERTEX" envDefault:"false"`
	Project   string `env:"PROJECT"`
	Location  string `env:"LOCATION" envDefault:"us-central1"`
}

type NotificationConnectorConfig struct {
	HTTPClientConfig
	AgentEndpoint string `env:"AGENT_ENDPOINT" envDefault:"/api/agent"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"120s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"110s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL"`
}

// FileUploadConfig holds file upload limits
type FileUploadConfig struct {
	MaxFileSize   int64 `env:"MAX_FILE_SIZE" envDefault:"10485760"`   // 10 MiB
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"33554432"` // 32 MiB
}

type RateLimitConfig struct {
	RequestsPerMinute int `env:"PER_MINUTE" envDefault:"60"`
}

func LoadConfig(environment string) (*Config, error) {
	envFile := getEnvFile(environment)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = environment

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Location resolves TIMEZONE, falling back to the process local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func validateConfig(cfg *Config) error {
	var errors []string

	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, "SHUTDOWN_TIMEOUT must be positive")
	}

	llm := cfg.LLMConnectorCfg
	if llm.Temperature < 0 || llm.Temperature > 2 {
		errors = append(errors, fmt.Sprintf("LLM_TEMPERATURE must be between 0 and 2, got %g", llm.Temperature))
	}

	if llm.MaxRetries > 10 {
		errors = append(errors, fmt.Sprintf("LLM_MAX_RETRIES must be at most 10, got %d", llm.MaxRetries))
	}

	if !cfg.EnableMocks {
		switch llm.Provider {
		case ProviderOpenAI:
			if llm.APIKey == "" {
				errors = append(errors, "LLM_API_KEY is required for the openai provider")
			}
			if llm.Url == "" {
				errors = append(errors, "LLM_SERVICE_URL is required for the openai provider")
			}
		case ProviderGemini:
			if cfg.GeminiCfg.UseVertex && cfg.GeminiCfg.Project == "" {
				errors = append(errors, "GEMINI_PROJECT is required when GEMINI_USE_VERTEX is set")
			}
			if !cfg.GeminiCfg.UseVertex && llm.APIKey == "" {
				errors = append(errors, "LLM_API_KEY is required for the gemini provider")
			}
		default:
			errors = append(errors, fmt.Sprintf("LLM_PROVIDER must be one of openai, gemini, got %q", llm.Provider))
		}

		if cfg.NotificationConnectorCfg.Url == "" {
			errors = append(errors, "NOTIFY_SERVICE_URL is required")
		}
	}

	if cfg.FileUploadCfg.MaxFileSize <= 0 || cfg.FileUploadCfg.MaxFileSize > cfg.FileUploadCfg.MaxUploadSize {
		errors = append(errors, fmt.Sprintf("FILE_UPLOAD_MAX_FILE_SIZE must be between 1 and FILE_UPLOAD_MAX_UPLOAD_SIZE(%d), got %d",
			cfg.FileUploadCfg.MaxUploadSize, cfg.FileUploadCfg.MaxFileSize))
	}

	if cfg.RateLimitCfg.RequestsPerMinute < 0 {
		errors = append(errors, fmt.Sprintf("RATE_LIMIT_PER_MINUTE must not be negative, got %d", cfg.RateLimitCfg.RequestsPerMinute))
	}

	if _, err := cfg.Location(); err != nil {
		errors = append(errors, fmt.Sprintf("TIMEZONE is invalid: %v", err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
