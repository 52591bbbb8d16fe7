package api

import (
	"net/http"
	"time"

	contractapi "github.com/futig/resignation-backend/internal/api/contract"
	"github.com/futig/resignation-backend/internal/api/docs"
	"github.com/futig/resignation-backend/internal/api/middleware"
	resignationapi "github.com/futig/resignation-backend/internal/api/resignation"
	"github.com/futig/resignation-backend/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type RouterConfig struct {
	HandlerTimeout    time.Duration
	RequestsPerMinute int
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	cfg RouterConfig,
	contractHandler *contractapi.Handler,
	resignationHandler *resignationapi.Handler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                   // Recover from panics
	r.Use(chimiddleware.RequestID)                   // Add request ID
	r.Use(middleware.Logger(logger))                 // Log requests
	r.Use(middleware.CORS)                           // Handle CORS
	r.Use(chimiddleware.Timeout(cfg.HandlerTimeout)) // Model calls can be slow

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]string{"status": "healthy"})
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r, docs.DefaultSpecPath)

	r.Route("/api", func(r chi.Router) {
		r.Get("/hello", func(w http.ResponseWriter, r *http.Request) {
			response.Success(w, map[string]string{"message": "Hello from Go"})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.NewRateLimiter(cfg.RequestsPerMinute).Middleware)

			contractapi.RegisterRoutes(r, contractHandler)
			resignationapi.RegisterRoutes(r, resignationHandler)
		})
	})

	return r
}
