package notification

import (
	"context"
	"fmt"
	"net/http"

	"github.com/futig/resignation-backend/internal/config"
	"github.com/futig/resignation-backend/internal/entity"
	"github.com/futig/resignation-backend/internal/integration/common"
	pkghttp "github.com/futig/resignation-backend/pkg/http"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.NotificationConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.NotificationConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// NotifyAgent posts the safe address to the agent service exactly once.
// It reports true only for HTTP 200 with {"success": true}.
func (c *Connector) NotifyAgent(ctx context.Context, safeAddress string) (bool, error) {
	requestID := middleware.GetReqID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	ctxzap.Debug(ctx, "sending agent notification",
		zap.String("endpoint", c.config.AgentEndpoint),
		zap.String("request_id", requestID),
	)

	var (
		status int
		resp   entity.AgentNotificationResponse
	)
	opts := []pkghttp.RequestOpt{
		pkghttp.WithHeader("X-Request-ID", requestID),
		pkghttp.WithStatusCode(&status),
	}

	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.AgentEndpoint,
		&entity.AgentNotification{SafeAddress: safeAddress}, &resp, opts...)
	if err != nil {
		return false, fmt.Errorf("failed to notify agent, endpoint: %s, error: %w", c.config.AgentEndpoint, err)
	}

	if status != http.StatusOK {
		return false, fmt.Errorf("failed to notify agent: unexpected status %d", status)
	}

	ctxzap.Info(ctx, "agent notification sent",
		zap.Bool("success", resp.Success),
		zap.String("request_id", requestID),
	)
	return resp.Success, nil
}
