package contract

import (
	"context"

	"github.com/futig/resignation-backend/internal/entity"
	"github.com/futig/resignation-backend/internal/pkg/formatter"
)

type ContractUsecase interface {
	Analyze(ctx context.Context, content []byte) (*entity.ContractAnalysis, error)
}

type FormatterFactory interface {
	Create(format entity.ResultFormat) (formatter.Formatter, error)
}
