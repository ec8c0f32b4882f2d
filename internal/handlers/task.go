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

// CreateFlowerTask submits a scraping task to the dashboard.
// (POST /api/admin/flower-tasks)
func (h *Handler) CreateFlowerTask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderBadRequest(w, r, "invalid form body")
		return
	}

	taskName := r.PostFormValue("task_name")
	if taskName == "" {
		renderBadRequest(w, r, "task_name is required")
		return
	}

	record, err := h.taskSrv.Submit(r.Context(), taskName)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, api.TaskSubmitReply{
		Status:  "success",
		Message: fmt.Sprintf("Task '%s' created successfully", taskName),
		Data: api.TaskSubmitData{
			TaskID:     record.TaskID,
			TaskStatus: record.Status,
		},
	})
}

// ListFlowerTasks returns one page of tasks with live dashboard status.
// Records whose dashboard lookup failed are dropped from the page.
// (GET /api/admin/flower-tasks)
func (h *Handler) ListFlowerTasks(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	page, perPage = service.NormalizePage(page, perPage, service.MaxPerPage)

	results, err := h.taskSrv.List(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}

	tasks := make([]api.TaskInfo, 0, len(results))
	for _, result := range results {
		if result.Err != nil {
			continue
		}
		tasks = append(tasks, result.Task)
	}

	pageItems, pagination := service.Paginate(tasks, page, perPage)
	render.JSON(w, r, api.TaskList{Tasks: pageItems, Pagination: pagination})
}

// GetFlowerTask returns the dashboard's status document for one task.
// (GET /api/admin/flower-tasks/{task_id})
func (h *Handler) GetFlowerTask(w http.ResponseWriter, r *http.Request) {
	doc, err := h.taskSrv.GetStatusDocument(r.Context(), chi.URLParam(r, "task_id"))
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, doc)
}

// GetFlowerHealth reports dashboard liveness.
// (GET /api/admin/flower-health)
func (h *Handler) GetFlowerHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.taskSrv.Health(r.Context()))
}
