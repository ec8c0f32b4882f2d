package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/kogocampus/course-scraper/pkg/requestid"
)

// RequestID takes the request ID from the x-request-id header, or from chi's
// own middleware when the header is absent, generating a fresh one otherwise,
// and injects it into the request context so handlers and loggers share it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("x-request-id")

		if requestID == "" {
			requestID = middleware.GetReqID(r.Context())
		}

		if requestID == "" {
			requestID = requestid.Generate()
		}

		ctx := requestid.ToContext(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
