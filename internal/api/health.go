package api

import (
	"net/http"
	"time"

	"github.com/agentdir/directory/internal/api/respond"
	"github.com/agentdir/directory/internal/platform/health"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	pinger health.Pinger
}

func NewHealthHandler(p health.Pinger) *HealthHandler { return &HealthHandler{pinger: p} }

// CheckHealth handles GET /api/health. Liveness only; it never touches the store.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// CheckStoreHealth handles GET /api/health/store by pinging the backing store.
func (h *HealthHandler) CheckStoreHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.pinger.HealthPing(r.Context()); err != nil {
		respond.WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":    "unhealthy",
			"message":   err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
