package builder

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/futig/resignation-backend/internal/api"
	contractapi "github.com/futig/resignation-backend/internal/api/contract"
	resignationapi "github.com/futig/resignation-backend/internal/api/resignation"
	"github.com/futig/resignation-backend/internal/config"
	"github.com/futig/resignation-backend/internal/extract/email"
	"github.com/futig/resignation-backend/internal/extract/pdf"
	"github.com/futig/resignation-backend/internal/integration/llm"
	"github.com/futig/resignation-backend/internal/integration/notification"
	"github.com/futig/resignation-backend/internal/pkg/formatter"
	pkglogger "github.com/futig/resignation-backend/internal/pkg/logger"
	"github.com/futig/resignation-backend/internal/pkg/validator"
	"github.com/futig/resignation-backend/internal/usecase/contract"
	"github.com/futig/resignation-backend/internal/usecase/resignation"
	"go.uber.org/zap"
)

// Pipelines holds the shared use cases. They keep no per-request state and
// are safe for concurrent use.
type Pipelines struct {
	Config      *config.Config
	Logger      *zap.Logger
	Validator   *validator.Validator
	Contract    *contract.ContractUsecase
	Resignation *resignation.ResignationUsecase
}

// BuildPipelines loads configuration and wires connectors and use cases.
func BuildPipelines(ctx context.Context, environment string) (*Pipelines, error) {
	cfg, err := config.LoadConfig(environment)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := pkglogger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("llm_provider", cfg.LLMConnectorCfg.Provider),
		zap.Bool("mocks", cfg.EnableMocks),
	)

	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("resolve timezone: %w", err)
	}

	// Initialize external service connectors (with mock support)
	var llmConnector contract.LLMConnector
	var notifier resignation.Notifier

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		llmConnector = llm.NewMockConnector(logger)
		notifier = notification.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		llmConnector, err = buildLLMConnector(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		notifier = notification.NewConnector(cfg.NotificationConnectorCfg, logger)
	}

	// Initialize document extractors
	pdfExtractor := pdf.NewExtractor(os.TempDir())
	emailParser := email.NewParser(location)

	// Initialize use cases
	contractUC := contract.NewUsecase(
		pdfExtractor,
		llmConnector,
		cfg.ContractOutputLanguage,
		logger,
	)

	resignationUC := resignation.NewUsecase(
		emailParser,
		llmConnector,
		notifier,
		location,
		logger,
	)
	logger.Info("Use cases initialized")

	return &Pipelines{
		Config:      cfg,
		Logger:      logger,
		Validator:   validator.NewFileValidator(cfg.FileUploadCfg),
		Contract:    contractUC,
		Resignation: resignationUC,
	}, nil
}

func buildLLMConnector(ctx context.Context, cfg *config.Config, logger *zap.Logger) (contract.LLMConnector, error) {
	switch cfg.LLMConnectorCfg.Provider {
	case config.ProviderGemini:
		conn, err := llm.NewGeminiConnector(ctx, cfg.LLMConnectorCfg, cfg.GeminiCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("setup gemini connector: %w", err)
		}
		return conn, nil
	default:
		return llm.NewConnector(cfg.LLMConnectorCfg, logger), nil
	}
}

// Build wires the HTTP application on top of the pipelines.
func Build(environment string) (*App, error) {
	p, err := BuildPipelines(context.Background(), environment)
	if err != nil {
		return nil, err
	}
	cfg, logger := p.Config, p.Logger

	// Setup API handlers
	contractHandler := contractapi.NewHandler(p.Contract, formatter.NewFactory(), cfg.FileUploadCfg, p.Validator)
	resignationHandler := resignationapi.NewHandler(p.Resignation, cfg.FileUploadCfg, p.Validator)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(api.RouterConfig{
		HandlerTimeout:    cfg.HandlerTimeout,
		RequestsPerMinute: cfg.RateLimitCfg.RequestsPerMinute,
	}, contractHandler, resignationHandler, logger)
	logger.Info("HTTP router configured")

	// Write timeout must outlast the handler timeout.
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.HandlerTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server:          server,
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeout,
	}, nil
}
