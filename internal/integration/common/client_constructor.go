package common

import (
	"strings"

	"github.com/futig/resignation-backend/internal/config"
	pkgHTTP "github.com/futig/resignation-backend/pkg/http"
	"go.uber.org/zap"
)

const userAgent = "resignation-backend"

// NewBaseConnector builds the JSON connector shared by outbound integrations.
// Request logging never includes headers, so tokens stay out of the logs.
func NewBaseConnector(cfg config.HTTPClientConfig, logger *zap.Logger) *pkgHTTP.Connector {
	connCfg := &pkgHTTP.ConnectorConfig{
		Logger:  logger,
		BaseURL: strings.TrimRight(cfg.Url, "/"),
	}

	return pkgHTTP.NewConnector(
		connCfg,
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnClientTimeout(cfg.ConnTimeout),
		pkgHTTP.WithClientKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithRequestLogging(),
		pkgHTTP.WithAuthToken(cfg.Token),
		pkgHTTP.WithUserAgent(userAgent),
	)
}
