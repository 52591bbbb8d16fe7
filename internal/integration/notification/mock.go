package notification

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector accepts every notification without any network call.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) NotifyAgent(ctx context.Context, safeAddress string) (bool, error) {
	ctxzap.Info(ctx, "[MOCK] agent notified", zap.String("safe_address", safeAddress))
	return true, nil
}
