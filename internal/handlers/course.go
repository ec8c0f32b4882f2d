package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/kogocampus/course-scraper/internal/auth"
	"go.uber.org/zap"
)

// GetCourseListing serves the stored course catalog for a school.
// (GET /api/course-listing/{school_name})
func (h *Handler) GetCourseListing(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustHaveIdentity(r.Context())
	schoolName := chi.URLParam(r, "school_name")

	data, err := h.courseSrv.GetCourseListing(r.Context(), schoolName)
	if err != nil {
		renderError(w, r, err)
		return
	}

	zap.S().Named("course").Debugf("served course listing for %q to %s %q", schoolName, identity.Kind, identity.Username)

	// The stored document is returned verbatim.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ListCourseListings returns all schools with course data, sorted by name.
// (GET /api/course-listing)
func (h *Handler) ListCourseListings(w http.ResponseWriter, r *http.Request) {
	schools, err := h.courseSrv.ListSchools(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, schools)
}
