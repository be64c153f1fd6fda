// Package httpapi exposes the slide editor over HTTP.
//
// The API is a thin JSON layer over [editor.Editor]: every route loads,
// transforms, and saves through the same engine the CLI uses, so layout
// semantics are identical across surfaces. Routing is chi; errors carry
// the engine's error codes in the response body.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mr-romero/slidegrid/pkg/config"
	"github.com/mr-romero/slidegrid/pkg/editor"
	"github.com/mr-romero/slidegrid/pkg/observability"
	"github.com/mr-romero/slidegrid/pkg/present"
)

// Server is the HTTP editor API.
type Server struct {
	editor   *editor.Editor
	sessions present.Store
	cfg      config.Config
	logger   *log.Logger
	router   chi.Router
}

// NewServer assembles the API over an editor and a session store.
func NewServer(ed *editor.Editor, sessions present.Store, cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{editor: ed, sessions: sessions, cfg: cfg, logger: logger}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/health", s.handleHealth)

	r.Route("/slides", func(r chi.Router) {
		r.Get("/", s.handleListSlides)
		r.Post("/", s.handleCreateSlide)

		r.Route("/{slideID}", func(r chi.Router) {
			r.Get("/", s.handleGetSlide)
			r.Delete("/", s.handleDeleteSlide)
			r.Get("/cells", s.handleCells)
			r.Get("/preview.svg", s.handlePreview)

			r.Post("/blocks", s.handleAddBlock)
			r.Post("/blocks/{blockID}/duplicate", s.handleDuplicateBlock)
			r.Delete("/blocks/{blockID}", s.handleDeleteBlock)

			r.Post("/layout/assign", s.handleAssign)
			r.Post("/layout/resize", s.handleResize)
			r.Post("/layout/span", s.handleSpan)
			r.Post("/layout/promote", s.handlePromote)
		})
	})

	r.Route("/present", func(r chi.Router) {
		r.Post("/", s.handleStartSession)
		r.Get("/code/{joinCode}", s.handleJoinSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Post("/advance", s.handleAdvanceSession)
			r.Delete("/", s.handleEndSession)
		})
	})

	return r
}

// observe reports request lifecycle to the HTTP hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

// ListenAndServe runs the API until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving editor API", "addr", s.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
