package contract

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers contract routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/analyze-contract", func(r chi.Router) {
		r.Post("/", h.AnalyzeContract)
		r.Post("/export", h.ExportChecklist)
	})
}
