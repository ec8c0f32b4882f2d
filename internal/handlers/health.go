package handlers

import (
	"net/http"

	"github.com/go-chi/render"
	api "github.com/kogocampus/course-scraper/api/v1alpha1"
)

// Health is the unauthenticated liveness probe.
// (GET /health)
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, api.StatusReply{Status: "ok"})
}
