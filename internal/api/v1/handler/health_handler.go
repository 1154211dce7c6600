package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// HealthHandler reports API and database health
type HealthHandler struct {
	client *firestore.Client
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(client *firestore.Client) *HealthHandler {
	return &HealthHandler{client: client}
}

// RegisterRoutes mounts the health route
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", h.healthCheck)
}

// healthCheck godoc
// @Summary Health check
// @Description Checks connectivity to the document store with a cheap read.
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) healthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Reading a document that does not exist confirms connectivity without
	// retrieving any data.
	_, err := h.client.Collection("health_check").Doc("ping").Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{
			"status":   "error",
			"database": "unhealthy",
			"reason":   err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":   "ok",
		"database": "healthy",
	})
}
