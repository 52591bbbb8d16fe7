package resignation

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers resignation routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/validate-resignation", h.ValidateResignation)
}
