package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/futig/resignation-backend/internal/config"
	"github.com/futig/resignation-backend/internal/entity"
	pkgRetry "github.com/futig/resignation-backend/internal/pkg/retry"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiConnector calls Gemini through the Gemini API or Vertex AI.
type GeminiConnector struct {
	models      contentGenerator
	model       string
	temperature float32
	maxRetries  uint
	retryCfg    pkgRetry.RetryConfig
	logger      *zap.Logger
}

func NewGeminiConnector(
	ctx context.Context,
	cfg config.LLMConnectorConfig,
	geminiCfg config.GeminiConfig,
	logger *zap.Logger,
) (*GeminiConnector, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  strings.TrimSpace(cfg.APIKey),
		Backend: genai.BackendGeminiAPI,
	}
	if geminiCfg.UseVertex {
		clientCfg = &genai.ClientConfig{
			Backend:  genai.BackendVertexAI,
			Project:  geminiCfg.Project,
			Location: geminiCfg.Location,
		}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	retryCfg := cfg.Retry
	if retryCfg.Delay == 0 {
		retryCfg = *pkgRetry.DefaultRetryConfig()
	}

	model := strings.TrimSpace(geminiCfg.Model)
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiConnector{
		models:      client.Models,
		model:       model,
		temperature: cfg.Temperature,
		maxRetries:  cfg.MaxRetries,
		retryCfg:    retryCfg,
		logger:      logger,
	}, nil
}

// Complete sends system messages as the system instruction and the rest as
// user content.
func (g *GeminiConnector) Complete(ctx context.Context, req *entity.CompletionRequest) (string, error) {
	ctxzap.Info(ctx, "requesting completion via Gemini",
		zap.String("model", g.model),
		zap.Bool("json_mode", req.JSONMode),
	)

	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.temperature),
	}
	if system := req.SystemPrompt(); system != "" {
		genCfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: system}}}
	}
	if req.JSONMode {
		genCfg.ResponseMIMEType = "application/json"
	}

	var resp *genai.GenerateContentResponse
	opts := append(g.retryCfg.ToRetryOptions(g.maxRetries),
		retry.Context(ctx),
		retry.RetryIf(isTemporaryGeminiError),
		retry.OnRetry(func(n uint, err error) {
			ctxzap.Warn(ctx, "retrying Gemini completion", zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)

	err := retry.Do(func() error {
		var err error
		resp, err = g.models.GenerateContent(ctx, g.model, genai.Text(req.UserPrompt()), genCfg)
		return err
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	output := joinCandidateText(resp)
	if output == "" {
		return "", fmt.Errorf("generate content: %w", entity.ErrEmptyCompletion)
	}

	ctxzap.Info(ctx, "completion received", zap.Int("result_length", len(output)))

	return output, nil
}

func joinCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
		// Only the first candidate with content is used.
		if builder.Len() > 0 {
			break
		}
	}

	return strings.TrimSpace(builder.String())
}

func isTemporaryGeminiError(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}
	return false
}
