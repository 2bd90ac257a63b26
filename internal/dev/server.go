package dev

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crel-dev/crel/internal/config"
	"github.com/crel-dev/crel/pkg/markup"
	"github.com/crel-dev/crel/pkg/middleware"
	"github.com/crel-dev/crel/pkg/publish"
)

// ServerOptions configures the preview server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Logger receives server logs. Default: slog.Default().
	Logger *slog.Logger

	// OnReload is called after browsers were told to reload.
	OnReload func(clients int)
}

// Server is the preview server.
type Server struct {
	config       *config.Config
	options      ServerOptions
	logger       *slog.Logger
	builder      *publish.Builder
	watcher      *Watcher
	reloadServer *ReloadServer
	router       chi.Router
	httpServer   *http.Server
	mu           sync.Mutex
	running      bool
}

// NewServer creates a new preview server.
func NewServer(options ServerOptions) *Server {
	cfg := options.Config
	if cfg == nil {
		cfg = config.New()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config:  cfg,
		options: options,
		logger:  logger,
		builder: publish.NewBuilder(publish.BuilderConfig{
			PagesDir:  cfg.PagesPath(),
			OutputDir: cfg.OutputPath(),
			MaxDepth:  cfg.NestingLimit(),
			Logger:    logger,
		}),
		watcher: NewWatcher(WatcherConfig{
			Paths:  CollectWatchPaths(cfg),
			Ignore: append(append([]string(nil), DefaultIgnore...), cfg.Dev.Ignore...),
		}),
	}
	if cfg.HotReloadEnabled() {
		s.reloadServer = NewReloadServer(logger)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.OpenTelemetry(middleware.WithRequestFilter(func(r *http.Request) bool {
		return r.URL.Path != ReloadPath && r.URL.Path != "/metrics"
	})))

	if s.config.MetricsEnabled() {
		r.Use(middleware.Prometheus())
		r.Handle("/metrics", promhttp.Handler())
	}
	if s.reloadEnabled() {
		r.Get(ReloadPath, s.reloadServer.HandleWebSocket)
	}
	r.Get("/", s.handlePage)
	r.Get("/*", s.handlePage)
	return r
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.httpServer = &http.Server{
		Addr:              s.config.DevAddress(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Unlock()

	s.watcher.OnChange(func(changes []Change) {
		s.handleChanges(changes)
	})
	go s.watcher.Start(ctx)

	if s.pagesMissing() {
		s.logger.Warn("pages directory does not exist", "path", s.config.PagesPath())
	}
	s.logger.Info("preview server running",
		"url", s.config.DevURL(),
		"pages", s.config.PagesPath(),
		"hotReload", s.reloadEnabled())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop stops the preview server.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	s.watcher.Stop()
	if s.reloadServer != nil {
		s.reloadServer.Close()
	}
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// handlePage renders the page named by the request path.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(chi.URLParam(r, "*"), ".html")
	page, ok := s.builder.Lookup(name)
	if !ok {
		s.writeHTML(w, http.StatusNotFound, []byte(notFoundPage(r.URL.Path, s.reloadEnabled())))
		return
	}

	html, err := s.builder.RenderPage(r.Context(), page)
	if err != nil {
		s.logger.Error("render failed", "page", page.Name, "error", err)
		s.writeHTML(w, http.StatusInternalServerError, []byte(errorPage(page.Path, err, s.reloadEnabled())))
		return
	}

	if s.reloadEnabled() {
		html = injectScript(html)
	}
	s.logger.Debug("served", "page", page.Name, "bytes", len(html))
	s.writeHTML(w, http.StatusOK, html)
}

func (s *Server) writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", publish.HTMLContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	w.Write(body)
}

// injectScript inserts the live reload client before </body>, falling back
// to </html> and then the end of the document.
func injectScript(html []byte) []byte {
	script := []byte(DevClientScript)
	idx := bytes.LastIndex(html, []byte("</body>"))
	if idx == -1 {
		idx = bytes.LastIndex(html, []byte("</html>"))
	}
	if idx == -1 {
		return append(html, script...)
	}

	out := make([]byte, 0, len(html)+len(script))
	out = append(out, html[:idx]...)
	out = append(out, script...)
	return append(out, html[idx:]...)
}

// handleChanges checks changed pages and tells browsers to reload or show
// the error.
func (s *Server) handleChanges(changes []Change) {
	var configChanged bool
	for _, change := range changes {
		s.logger.Info("changed", "path", change.Path, "type", change.Type, "removed", change.Removed)

		switch change.Type {
		case ChangeConfig:
			configChanged = true
		case ChangePage:
			if change.Removed {
				continue
			}
			if _, err := markup.DecodeFile(change.Path); err != nil {
				s.logger.Error("page invalid", "path", change.Path, "error", err)
				s.notifyError(change.Path, err)
				return
			}
		}
	}

	if configChanged {
		s.logger.Warn("crel.json changed; restart the server to apply it")
	}
	s.clearReloadError()
	s.notifyReload()
}

func (s *Server) reloadEnabled() bool {
	return s.reloadServer != nil
}

func (s *Server) notifyReload() {
	if !s.reloadEnabled() {
		return
	}
	s.reloadServer.NotifyReload()
	clients := s.reloadServer.ClientCount()
	if s.options.OnReload != nil {
		s.options.OnReload(clients)
	}
	s.logger.Info("reloaded browsers", "clients", clients)
}

func (s *Server) notifyError(file string, err error) {
	if !s.reloadEnabled() {
		return
	}
	s.reloadServer.NotifyError(file, err.Error())
}

func (s *Server) clearReloadError() {
	if !s.reloadEnabled() {
		return
	}
	s.reloadServer.ClearError()
}

// pagesMissing reports whether the pages directory does not exist.
func (s *Server) pagesMissing() bool {
	_, err := os.Stat(s.config.PagesPath())
	return os.IsNotExist(err)
}
