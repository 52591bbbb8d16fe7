package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/futig/resignation-backend/internal/config"
	"github.com/futig/resignation-backend/internal/entity"
	"github.com/futig/resignation-backend/internal/integration/common"
	pkgRetry "github.com/futig/resignation-backend/internal/pkg/retry"
	pkghttp "github.com/futig/resignation-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Temperature    float32         `json:"temperature"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

// Connector talks to an OpenAI-compatible chat completions API.
type Connector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *Connector {
	httpCfg := cfg.HTTPClientConfig
	if httpCfg.Token == "" {
		httpCfg.Token = cfg.APIKey
	}
	if cfg.Retry.Delay == 0 {
		cfg.Retry = *pkgRetry.DefaultRetryConfig()
	}

	return &Connector{
		connector: common.NewBaseConnector(httpCfg, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Complete sends the prompt and returns the first choice's content. Network
// errors, 429 and 5xx responses are retried up to MaxRetries times.
func (c *Connector) Complete(ctx context.Context, req *entity.CompletionRequest) (string, error) {
	ctxzap.Info(ctx, "requesting completion via LLM service",
		zap.String("model", c.config.Model),
		zap.Bool("json_mode", req.JSONMode),
	)

	body := &chatCompletionRequest{
		Model:       c.config.Model,
		Temperature: c.config.Temperature,
		Messages:    make([]chatMessage, 0, len(req.Messages)),
	}
	for _, m := range req.Messages {
		body.Messages = append(body.Messages, chatMessage{Role: string(m.Role), Content: m.Content})
	}
	if req.JSONMode {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	var resp chatCompletionResponse
	opts := append(c.config.Retry.ToRetryOptions(c.config.MaxRetries),
		retry.Context(ctx),
		retry.RetryIf(pkghttp.IsTemporary),
		retry.OnRetry(func(n uint, err error) {
			ctxzap.Warn(ctx, "retrying LLM completion", zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)

	err := retry.Do(func() error {
		resp = chatCompletionResponse{}
		return c.connector.DoRequest(ctx, http.MethodPost, c.config.CompletionEndpoint, body, &resp)
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: %w: no choices", entity.ErrEmptyCompletion)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("chat completion: %w: finish reason %q", entity.ErrEmptyCompletion, resp.Choices[0].FinishReason)
	}

	ctxzap.Info(ctx, "completion received", zap.Int("result_length", len(content)))

	return content, nil
}
