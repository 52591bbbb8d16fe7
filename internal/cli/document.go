package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/futig/resignation-backend/internal/builder"
	"github.com/futig/resignation-backend/internal/entity"
	"github.com/futig/resignation-backend/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// readDocument applies the same extension and size rules as the HTTP API.
func readDocument(p *builder.Pipelines, path string, kind entity.DocumentKind) ([]byte, error) {
	if err := validator.ValidateFilename(path, kind); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := p.Validator.ValidateSize(filepath.Base(path), int64(len(content))); err != nil {
		return nil, err
	}
	return content, nil
}

func withLogger(cmd *cobra.Command, logger *zap.Logger) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return ctxzap.ToContext(ctx, logger.With(zap.String("command", cmd.Name())))
}
