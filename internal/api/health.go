package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mfalcone/memoria/internal/store"
)

// HealthHandler reports process and store health.
type HealthHandler struct {
	store store.AttributeStore
}

// NewHealthHandler creates a health handler over the attribute store.
func NewHealthHandler(st store.AttributeStore) *HealthHandler {
	return &HealthHandler{store: st}
}

// RegisterHealth mounts the readiness endpoint.
func (h *HealthHandler) RegisterHealth(r chi.Router) {
	r.Get("/healthz", h.serveHealth)
}

func (h *HealthHandler) serveHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		JSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"store":  err.Error(),
		})
		return
	}
	JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
