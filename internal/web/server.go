// Package web hosts the landing page and any static assets next to it.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

//go:embed static
var staticFS embed.FS

// DefaultPort is used when neither --addr nor $PORT is given.
const DefaultPort = "1337"

// Config holds the web host settings.
type Config struct {
	Addr    string // host:port to listen on
	Dir     string // Serve this directory instead of the embedded page
	SSHHost string // Shown on the landing page
	SSHPort string
}

// Server serves static files over HTTP.
type Server struct {
	config Config
	http   *http.Server
	logger *log.Logger
}

// New creates a server. A Dir that does not exist is an error.
func New(cfg Config, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Addr == "" {
		cfg.Addr = ":" + DefaultPort
	}

	files, err := root(cfg.Dir)
	if err != nil {
		return nil, err
	}

	s := &Server{config: cfg, logger: logger}
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.logRequests(s.routes(files)),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

// root picks the file tree to serve.
func root(dir string) (fs.FS, error) {
	if dir == "" {
		sub, err := fs.Sub(staticFS, "static")
		if err != nil {
			return nil, fmt.Errorf("web: embedded files: %w", err)
		}
		return sub, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("web: %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("web: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("web: %s is not a directory", dir)
	}
	return os.DirFS(abs), nil
}

// Handler returns the request handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) routes(files fs.FS) http.Handler {
	mux := http.NewServeMux()
	static := http.FileServerFS(files)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && r.URL.Path != "/index.html" {
			static.ServeHTTP(w, r)
			return
		}
		if _, err := fs.Stat(files, "index.html"); err != nil {
			http.NotFound(w, r)
			return
		}
		page, err := template.ParseFS(files, "index.html")
		if err != nil {
			s.logger.Error("landing page", "err", err)
			http.Error(w, "landing page unavailable", http.StatusInternalServerError)
			return
		}
		var buf bytes.Buffer
		if err := page.Execute(&buf, s.landing()); err != nil {
			s.logger.Error("landing page", "err", err)
			http.Error(w, "landing page unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		//nolint:errcheck // Client may have gone away
		buf.WriteTo(w)
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintln(w, "ok")
	})
	return mux
}

// landingPage is the data the landing page template is executed with.
type landingPage struct {
	SSHHost string
	SSHPort string
}

func (s *Server) landing() landingPage {
	p := landingPage{SSHHost: s.config.SSHHost, SSHPort: s.config.SSHPort}
	if p.SSHHost == "" {
		p.SSHHost = "localhost"
	}
	if p.SSHPort == "" {
		p.SSHPort = "23234"
	}
	return p
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// Serve accepts connections on l until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(l)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web: shutdown: %w", err)
	}
	return nil
}

// ListenAndServe listens on the configured address and serves until ctx
// is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("web: listen: %w", err)
	}
	s.logger.Info("starting web server", "address", "http://"+l.Addr().String())
	return s.Serve(ctx, l)
}
