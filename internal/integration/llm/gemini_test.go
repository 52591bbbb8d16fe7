package llm

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/futig/resignation-backend/internal/entity"
	pkgRetry "github.com/futig/resignation-backend/internal/pkg/retry"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeGenerateResponse struct {
	resp *genai.GenerateContentResponse
	err  error
}

type generateCall struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

type fakeModels struct {
	mu    sync.Mutex
	queue []fakeGenerateResponse
	calls []generateCall
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, generateCall{model: model, contents: contents, config: config})
	if len(f.queue) == 0 {
		return nil, errors.New("unexpected call")
	}
	next := f.queue[0]
	f.queue = f.queue[1:]
	return next.resp, next.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func newTestGemini(models *fakeModels) *GeminiConnector {
	return &GeminiConnector{
		models:      models,
		model:       "gemini-test",
		temperature: 0.3,
		maxRetries:  2,
		retryCfg:    pkgRetry.RetryConfig{Delay: time.Millisecond, MaxDelay: time.Millisecond},
		logger:      zap.NewNop(),
	}
}

func TestGeminiCompleteSetsSystemInstructionAndJSONMode(t *testing.T) {
	models := &fakeModels{queue: []fakeGenerateResponse{{resp: textResponse(`{"ok":true}`)}}}
	g := newTestGemini(models)

	out, err := g.Complete(context.Background(), testRequest(true))
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out != `{"ok":true}` {
		t.Fatalf("unexpected output %q", out)
	}

	call := models.calls[0]
	if call.model != "gemini-test" {
		t.Fatalf("unexpected model %q", call.model)
	}
	if call.config.SystemInstruction == nil || call.config.SystemInstruction.Parts[0].Text != "system" {
		t.Fatalf("expected system instruction to be set")
	}
	if call.config.ResponseMIMEType != "application/json" {
		t.Fatalf("expected json response mime type, got %q", call.config.ResponseMIMEType)
	}
	if call.config.Temperature == nil || *call.config.Temperature != 0.3 {
		t.Fatalf("expected temperature 0.3")
	}
	if len(call.contents) != 1 || call.contents[0].Parts[0].Text != "user" {
		t.Fatalf("unexpected contents")
	}
}

func TestGeminiRetriesOnTemporaryError(t *testing.T) {
	tempErr := genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"}
	models := &fakeModels{queue: []fakeGenerateResponse{
		{err: tempErr},
		{resp: textResponse("retry ok")},
	}}
	g := newTestGemini(models)

	out, err := g.Complete(context.Background(), testRequest(false))
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out != "retry ok" {
		t.Fatalf("unexpected output %q", out)
	}
	if len(models.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(models.calls))
	}
}

func TestGeminiDoesNotRetryPermanentError(t *testing.T) {
	permErr := genai.APIError{Code: http.StatusBadRequest, Status: "INVALID_ARGUMENT"}
	models := &fakeModels{queue: []fakeGenerateResponse{{err: permErr}}}
	g := newTestGemini(models)

	if _, err := g.Complete(context.Background(), testRequest(false)); err == nil {
		t.Fatalf("expected error")
	}
	if len(models.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(models.calls))
	}
}

func TestGeminiEmptyResponse(t *testing.T) {
	models := &fakeModels{queue: []fakeGenerateResponse{{resp: &genai.GenerateContentResponse{}}}}
	g := newTestGemini(models)

	_, err := g.Complete(context.Background(), testRequest(false))
	if !errors.Is(err, entity.ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}
