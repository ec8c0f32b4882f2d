package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/kogocampus/course-scraper/internal/auth"
	"github.com/kogocampus/course-scraper/internal/config"
	"github.com/kogocampus/course-scraper/internal/flower"
	"github.com/kogocampus/course-scraper/internal/handlers"
	"github.com/kogocampus/course-scraper/internal/service"
	"github.com/kogocampus/course-scraper/internal/storage"
	"github.com/kogocampus/course-scraper/internal/store"
	"github.com/kogocampus/course-scraper/pkg/metrics"
	"github.com/kogocampus/course-scraper/pkg/middleware"
	"go.uber.org/zap"
)

const gracefulShutdownTimeout = 5 * time.Second

type Server struct {
	cfg      *config.Config
	store    store.Store
	blob     storage.BlobStore
	flower   *flower.Client
	listener net.Listener
}

// New returns a new instance of the course-scraper API server.
func New(
	cfg *config.Config,
	store store.Store,
	blob storage.BlobStore,
	flower *flower.Client,
	listener net.Listener,
) *Server {
	return &Server{
		cfg:      cfg,
		store:    store,
		blob:     blob,
		flower:   flower,
		listener: listener,
	}
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	adminAuth, err := auth.NewBasicAuthenticator(s.cfg.Service.AdminUsername, s.cfg.Service.AdminPassword)
	if err != nil {
		return err
	}
	studentAuth, err := auth.NewStudentAuthenticator(s.cfg.Service.StudentManagerURL)
	if err != nil {
		return err
	}

	handler := handlers.New(
		service.NewCourseService(s.store, s.blob),
		service.NewSchoolService(s.store, s.blob),
		service.NewTaskService(s.store, s.flower),
		service.NewObjectService(s.blob),
	)

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegisterDefault()

	router := chi.NewRouter()
	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
	)

	router.Get("/health", handler.Health)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(studentAuth.Authenticator)
			r.Get("/course-listing", handler.ListCourseListings)
			r.Get("/course-listing/{school_name}", handler.GetCourseListing)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(adminAuth.Authenticator)

			r.Post("/school-entries", handler.CreateSchoolEntry)
			r.Get("/school-entries", handler.ListSchoolEntries)
			r.Delete("/school-entries/{school_name}", handler.DeleteSchoolEntry)

			r.Get("/s3-list", handler.ListObjects)
			r.Get("/s3-preview/*", handler.PreviewObject)
			r.Put("/s3-preview/*", handler.UpdateObject)

			r.Post("/flower-tasks", handler.CreateFlowerTask)
			r.Get("/flower-tasks", handler.ListFlowerTasks)
			r.Get("/flower-tasks/{task_id}", handler.GetFlowerTask)
			r.Get("/flower-health", handler.GetFlowerHealth)

			// Admin-authenticated passthrough for testing the end-user
			// handler; the admin identity satisfies its auth requirement.
			r.Get("/test-course-listing/{school_name}", handler.GetCourseListing)
		})
	})

	httpServer := &http.Server{
		Addr:    s.cfg.Service.Address,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		httpServer.SetKeepAlivesEnabled(false)
		_ = httpServer.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("serving api: %s", s.cfg.Service.Address)
	if err := httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}
