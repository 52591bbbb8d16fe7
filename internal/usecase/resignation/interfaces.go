package resignation

import (
	"context"

	"github.com/futig/resignation-backend/internal/entity"
)

type EmailParser interface {
	Parse(content []byte) (*entity.ExtractedEmail, error)
}

type LLMConnector interface {
	Complete(ctx context.Context, req *entity.CompletionRequest) (string, error)
}

type Notifier interface {
	NotifyAgent(ctx context.Context, safeAddress string) (bool, error)
}
