// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/quick-node-clone/internal/adapters/http/dto"
	"github.com/jsamuelsen11/quick-node-clone/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Unknown routes answer
// with RFC 9457 problem details.
func NewRouter(
	nodeHandler *handlers.NodeHandler,
	formHandler *handlers.FormHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound)
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/nodes/{id}", nodeHandler.GetNode)
		r.Post("/nodes/{id}/clone", nodeHandler.CloneNode)

		r.Get("/forms/{formId}", formHandler.GetForm)
		r.Post("/forms/{formId}/submit", formHandler.SubmitForm)
	})

	return r
}
