package resignation

import (
	"context"

	"github.com/futig/resignation-backend/internal/entity"
)

type ResignationUsecase interface {
	Validate(ctx context.Context, content []byte, safeAddress string) (*entity.ValidationResult, error)
}
