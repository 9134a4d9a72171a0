// Package viewer serves the browsable reference site: sidebar navigation,
// per-item detail pages with an in-page outline, deep links, and a small
// JSON API over the normalized document.
package viewer

import (
	"context"
	"fmt"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ksalhi/refview/internal/navigate"
	"github.com/ksalhi/refview/internal/refdoc"
)

// Config holds server configuration.
type Config struct {
	Port int
	// Title is the site name shown in the sidebar header.
	Title string
	// DefaultMode applies when no cookie or query override is present.
	DefaultMode refdoc.ViewMode
	// AllowAll allows all CORS origins (dev mode).
	AllowAll bool
}

// Server renders the reference site for one loaded document. When the
// startup load failed, doc is nil and every page degrades to a rendered
// error state while the JSON API returns 503.
type Server struct {
	cfg        Config
	doc        *refdoc.Document
	loadErr    error
	nav        *navigate.Navigator
	index      *Index
	tmpl       *templates
	logger     *log.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a Server over the load result. Exactly one of doc and loadErr
// is expected to be set.
func New(cfg Config, doc *refdoc.Document, loadErr error, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.DefaultMode == "" {
		cfg.DefaultMode = refdoc.ModeUser
	}

	s := &Server{
		cfg:     cfg,
		doc:     doc,
		loadErr: loadErr,
		tmpl:    newTemplates(),
		logger:  logger,
	}
	if doc != nil {
		s.nav = navigate.New(doc)
		s.index = BuildIndex(doc)
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "If-None-Match"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", s.handleHealthz)

	// HTML pages.
	r.Get("/", s.handleHome)
	r.Get("/item/{name}", s.handleItem)
	r.Get("/mode/{mode}", s.handleMode)
	r.Get("/style.css", s.handleCSS)

	// JSON API.
	r.Get("/api/document", s.handleAPIDocument)
	r.Get("/api/items/{name}", s.handleAPIItem)
	r.Get("/api/search", s.handleAPISearch)

	return r
}

// requestLogger logs one structured line per request at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start).Round(time.Millisecond))
	})
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("refview listening", "addr", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
