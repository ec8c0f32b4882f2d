package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	api "github.com/kogocampus/course-scraper/api/v1alpha1"
)

// ListObjects browses the object store one delimiter level at a time.
// (GET /api/admin/s3-list)
func (h *Handler) ListObjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	maxKeys, _ := strconv.Atoi(query.Get("max_keys"))

	listing, err := h.objectSrv.List(r.Context(), query.Get("prefix"), query.Get("continuation_token"), maxKeys)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, listing)
}

// PreviewObject returns the JSON document stored at the key.
// (GET /api/admin/s3-preview/{key})
func (h *Handler) PreviewObject(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		renderBadRequest(w, r, "object key is required")
		return
	}

	data, err := h.objectSrv.Preview(r.Context(), key)
	if err != nil {
		renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// UpdateObject replaces the JSON document stored at the key, re-serialized
// with stable indented formatting.
// (PUT /api/admin/s3-preview/{key})
func (h *Handler) UpdateObject(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		renderBadRequest(w, r, "object key is required")
		return
	}

	var value any
	if err := json.NewDecoder(r.Body).Decode(&value); err != nil {
		renderBadRequest(w, r, "request body is not valid JSON")
		return
	}

	if err := h.objectSrv.Update(r.Context(), key, value); err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, api.StatusReply{Status: "success", Message: "Object updated"})
}
