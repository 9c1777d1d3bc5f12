// Package web provides the HTTP server and handlers for the master-data
// API: item and BoM CRUD, bulk-import validation sessions, pending-setup
// advisories, and error-report downloads. All responses are JSON except
// the spreadsheet downloads.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mfgdata/masterdata/internal/config"
	"github.com/mfgdata/masterdata/internal/core"
	"github.com/mfgdata/masterdata/internal/store"
)

// Catalog is the storage surface the handlers need. *store.Store satisfies
// it; tests substitute a stub.
type Catalog interface {
	Snapshot(ctx context.Context) (store.Snapshot, error)

	ListItems(ctx context.Context, filter store.ItemFilter) ([]core.Item, error)
	GetItem(ctx context.Context, id string) (core.Item, error)
	CreateItem(ctx context.Context, it core.Item) error
	CreateItems(ctx context.Context, items []core.Item) error
	UpdateItem(ctx context.Context, it core.Item) error
	DeleteItem(ctx context.Context, id string) error

	ListBoMs(ctx context.Context) ([]core.BoMEntry, error)
	GetBoM(ctx context.Context, id string) (core.BoMEntry, error)
	CreateBoM(ctx context.Context, b core.BoMEntry) error
	CreateBoMs(ctx context.Context, boms []core.BoMEntry) error
	UpdateBoM(ctx context.Context, b core.BoMEntry) error
	DeleteBoM(ctx context.Context, id string) error
}

// Server is the HTTP server for the master-data application.
type Server struct {
	catalog     Catalog
	sessions    *core.SessionStore
	maxFileSize int64
	router      *chi.Mux
	server      *http.Server
}

// NewServer creates a new Server instance.
func NewServer(catalog Catalog, sessions *core.SessionStore, maxFileSize int64) *Server {
	s := &Server{
		catalog:     catalog,
		sessions:    sessions,
		maxFileSize: maxFileSize,
		router:      chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.Timeout(60 * time.Second))
	s.router.Use(securityHeaders)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		// Item master
		r.Get("/items", s.handleListItems)
		r.Post("/items", s.handleCreateItem)
		r.Get("/items/{id}", s.handleGetItem)
		r.Put("/items/{id}", s.handleUpdateItem)
		r.Delete("/items/{id}", s.handleDeleteItem)

		// Bills of Materials
		r.Get("/boms", s.handleListBoMs)
		r.Post("/boms", s.handleCreateBoM)
		r.Get("/boms/{id}", s.handleGetBoM)
		r.Put("/boms/{id}", s.handleUpdateBoM)
		r.Delete("/boms/{id}", s.handleDeleteBoM)

		// Bulk import validation
		r.Post("/validate/{kind}", s.handleValidateFile)
		r.Get("/validate/{kind}/{sessionID}", s.handleGetSession)
		r.Post("/validate/{kind}/{sessionID}/rows/{index}", s.handleRevalidateRow)
		r.Post("/validate/{kind}/{sessionID}/commit", s.handleCommit)
		r.Get("/validate/{kind}/{sessionID}/error-report", s.handleErrorReport)

		// Import template download
		r.Get("/template/{kind}", s.handleTemplate)

		// Pending setup advisories
		r.Get("/pending-setup", s.handlePendingSetup)
	})
}

// ServeHTTP implements http.Handler, mainly for tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, cfg config.ServerConfig) error {
	s.server = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", cfg.Addr())
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	slog.Info("shutting down http server")
	return s.server.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
