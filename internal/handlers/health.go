package handlers

import "net/http"

// HealthResponse represents the health check body
// swagger:model HealthResponse
type HealthResponse struct {
	// Status message
	// default: TourneyHub API is running
	Message string `json:"message"`
}

// NewHealthHandler returns a liveness probe handler.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router / [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Message: "TourneyHub API is running"})
	}
}
