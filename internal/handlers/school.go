package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	api "github.com/kogocampus/course-scraper/api/v1alpha1"
	"github.com/kogocampus/course-scraper/internal/service"
)

// CreateSchoolEntry creates or updates a school mapping.
// (POST /api/admin/school-entries)
func (h *Handler) CreateSchoolEntry(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderBadRequest(w, r, "invalid form body")
		return
	}

	schoolName := r.PostFormValue("school_name")
	courseDataPath := r.PostFormValue("course_data_path")
	if schoolName == "" || courseDataPath == "" {
		renderBadRequest(w, r, "school_name and course_data_path are required")
		return
	}
	updateExisting, _ := strconv.ParseBool(r.PostFormValue("update_existing"))

	action, err := h.schoolSrv.CreateOrUpdateEntry(r.Context(), schoolName, courseDataPath, updateExisting)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, api.SchoolEntryReply{
		Status:  "success",
		Message: fmt.Sprintf("School entry %s for %s", action, schoolName),
		Data: api.SchoolEntryData{
			SchoolName:     schoolName,
			CourseDataPath: courseDataPath,
			Action:         action,
		},
	})
}

// ListSchoolEntries returns one page of school mappings.
// (GET /api/admin/school-entries)
func (h *Handler) ListSchoolEntries(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	page, perPage = service.NormalizePage(page, perPage, service.MaxPerPage)

	entries, err := h.schoolSrv.ListEntries(r.Context(), page, perPage, r.URL.Query().Get("search"))
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, entries)
}

// DeleteSchoolEntry removes a school mapping.
// (DELETE /api/admin/school-entries/{school_name})
func (h *Handler) DeleteSchoolEntry(w http.ResponseWriter, r *http.Request) {
	schoolName := chi.URLParam(r, "school_name")

	if err := h.schoolSrv.DeleteEntry(r.Context(), schoolName); err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, api.StatusReply{
		Status:  "success",
		Message: fmt.Sprintf("School entry '%s' deleted successfully", schoolName),
	})
}
