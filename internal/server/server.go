// Package server exposes the profile extraction pipeline over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/drivelinehq/driver-profile-api/internal/parser"
	"github.com/drivelinehq/driver-profile-api/internal/storage"
)

// Server owns the HTTP surface: routing, request handling, and lifecycle.
type Server struct {
	parser      *parser.Parser
	store       storage.Store
	logger      *zap.Logger
	uploadDir   string
	maxFileSize int64
	serviceName string
	version     string

	httpServer *http.Server
}

// Options configures a Server.
type Options struct {
	Addr        string
	UploadDir   string
	MaxFileSize int64
	ServiceName string
	Version     string
}

// New builds a Server around the given parser and store.
func New(p *parser.Parser, store storage.Store, logger *zap.Logger, opts Options) *Server {
	s := &Server{
		parser:      p,
		store:       store,
		logger:      logger,
		uploadDir:   opts.UploadDir,
		maxFileSize: opts.MaxFileSize,
		serviceName: opts.ServiceName,
		version:     opts.Version,
	}
	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router wires all endpoints.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/health", s.handleHealth)

	r.Route("/api/v2", func(r chi.Router) {
		r.Post("/profiles", s.handleUpload)
		r.Get("/profiles", s.handleList)
		r.Get("/profiles/search", s.handleSearch)
		r.Get("/profiles/{driverID}", s.handleGet)
		r.Put("/profiles/{driverID}/status", s.handleUpdateStatus)
		r.Get("/statistics", s.handleStatistics)
	})

	return r
}

// Start serves HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("http server listening", zap.String("addr", s.httpServer.Addr))
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
