// Package httpd is the HTTP delivery layer: REST routes, multipart
// ingestion, static UI serving, and the development-only reload channel.
package httpd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"github.com/mouessam/localstack-ses-admin/internal/provider"
)

// shutdownTimeout is the maximum time to wait for in-flight requests
// during graceful shutdown.
const shutdownTimeout = 15 * time.Second

// Config holds the configuration for an HTTP server.
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":8080").
	ListenAddr string

	// Development enables the reload endpoints.
	Development bool

	// UIDir is the directory holding the compiled browser bundle.
	UIDir string

	// MaxUploadSize is the per-file byte ceiling for multipart attachments.
	MaxUploadSize int64

	// Email is the email-provider port.
	Email provider.EmailProvider

	// Messages is the message-store port.
	Messages provider.MessageStore
}

// Server exposes the REST API and the browser UI.
type Server struct {
	config Config
	router *mux.Router
	reload *reloadHub
}

// New creates a Server and registers all routes.
func New(config Config) *Server {
	s := &Server{
		config: config,
		router: mux.NewRouter(),
		reload: newReloadHub(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/identities", s.handleListIdentities).Methods(http.MethodGet)
	api.HandleFunc("/identities", s.handleVerifyIdentity).Methods(http.MethodPost)
	api.HandleFunc("/identities/{identity}", s.handleDeleteIdentity).Methods(http.MethodDelete)
	api.HandleFunc("/send", s.handleSendEmail).Methods(http.MethodPost)
	api.HandleFunc("/send-raw", s.handleSendRaw).Methods(http.MethodPost)
	api.HandleFunc("/messages", s.handleListMessages).Methods(http.MethodGet)
	api.HandleFunc("/messages", s.handleDeleteMessages).Methods(http.MethodDelete)

	if s.config.Development {
		s.router.HandleFunc("/__reload", s.handleReloadStream).Methods(http.MethodGet)
		s.router.HandleFunc("/__reload", s.handleReloadBroadcast).Methods(http.MethodPost)
	}

	// Everything else is either a UI asset, the SPA fallback, or a miss.
	s.router.PathPrefix("/").Handler(&spaHandler{root: resolveUIDir(s.config.UIDir)})
}

// Handler returns the root handler, with request logging applied.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.router)
}

// Start runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.config.ListenAddr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	slog.Info("http server listening", "addr", s.config.ListenAddr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// resolveUIDir picks the first existing bundle directory, preferring the
// configured one; when nothing exists yet it keeps the configured path so
// errors surface as 404s rather than at startup.
func resolveUIDir(configured string) string {
	candidates := []string{configured, "ui/dist", "ui"}
	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return configured
}
