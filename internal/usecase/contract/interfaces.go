package contract

import (
	"context"

	"github.com/futig/resignation-backend/internal/entity"
)

type Extractor interface {
	Extract(ctx context.Context, content []byte) (string, error)
}

type LLMConnector interface {
	Complete(ctx context.Context, req *entity.CompletionRequest) (string, error)
}
