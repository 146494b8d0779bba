package handlers

import (
	"net/http"
	"slices"

	"github.com/jsamuelsen11/quick-node-clone/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if the entity store and
// every registered dependency pass, 503 otherwise. Failing check names are
// listed in sorted order.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	var failing []string
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			failing = append(failing, name)
		} else {
			checks[name] = statusOK
		}
	}

	body := map[string]any{
		"status": statusReady,
		"checks": checks,
	}
	code := http.StatusOK
	if len(failing) > 0 {
		slices.Sort(failing)
		body["status"] = statusNotReady
		body["failing"] = failing
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, body)
}
