package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	api "github.com/kogocampus/course-scraper/api/v1alpha1"
	"github.com/kogocampus/course-scraper/internal/service"
	"github.com/kogocampus/course-scraper/internal/storage"
	"github.com/kogocampus/course-scraper/internal/store"
	"github.com/kogocampus/course-scraper/pkg/requestid"
)

// renderError translates service and client errors into the response
// taxonomy. No internal error type crosses the boundary unmapped.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	detail := err.Error()

	switch err.(type) {
	case *service.ErrSchoolNotFound:
		status = http.StatusNotFound
	case *service.ErrMappingExists:
		status = http.StatusBadRequest
	case *service.ErrInvalidSchoolName:
		status = http.StatusBadRequest
	case *service.ErrCourseDataMissing:
		status = http.StatusBadRequest
	case *service.ErrTaskNotFound:
		status = http.StatusNotFound
	case *service.ErrDashboardUnreachable:
		status = http.StatusBadGateway
	case *service.ErrTaskSubmission:
		status = http.StatusInternalServerError
	default:
		switch {
		case errors.Is(err, store.ErrStoreUnavailable):
			detail = "Failed to connect to key-value store"
		case errors.Is(err, store.ErrRecordNotFound):
			status = http.StatusNotFound
		case errors.Is(err, store.ErrInvalidKey):
			status = http.StatusBadRequest
		case errors.Is(err, storage.ErrObjectNotFound):
			status = http.StatusNotFound
		}
	}

	render.Status(r, status)
	render.JSON(w, r, api.Error{Detail: detail, RequestID: requestid.FromRequest(r)})
}

func renderBadRequest(w http.ResponseWriter, r *http.Request, detail string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, api.Error{Detail: detail, RequestID: requestid.FromRequest(r)})
}
