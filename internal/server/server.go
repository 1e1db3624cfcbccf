package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/a-h/templ"

	"github.com/alexisbeaulieu97/tailkit/internal/gallery"
	"github.com/alexisbeaulieu97/tailkit/internal/logger"
	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

const (
	// DefaultAddr is the preview server's default listen address.
	DefaultAddr = ":8080"

	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Options configures the preview server.
type Options struct {
	// Addr is the listen address; unset means DefaultAddr.
	Addr string
	// Registry supplies the stories; unset means the builtin set.
	Registry *gallery.Registry
	// Themes maps selectable theme names to their variant sets. The
	// default theme is always available under "default".
	Themes map[string]tailwind.Theme
	Log    *logger.Logger
}

// Server renders gallery stories over HTTP. Every page pulls Tailwind from
// the CDN, so the generated classes resolve without a build step.
type Server struct {
	addr       string
	registry   *gallery.Registry
	builders   map[string]*tailwind.Builder
	themeNames []string
	log        *logger.Logger
	httpServer *http.Server
}

// New builds a configured preview server.
func New(opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.Registry == nil {
		opts.Registry = gallery.Builtin()
	}

	s := &Server{
		addr:     opts.Addr,
		registry: opts.Registry,
		builders: make(map[string]*tailwind.Builder),
		log:      opts.Log,
	}

	if _, ok := opts.Themes["default"]; !ok {
		s.builders["default"] = tailwind.NewBuilder(tailwind.WithWarnFunc(s.log.Warnf))
	}
	for name, theme := range opts.Themes {
		s.builders[name] = tailwind.NewBuilder(tailwind.WithTheme(theme), tailwind.WithWarnFunc(s.log.Warnf))
	}

	for name := range s.builders {
		s.themeNames = append(s.themeNames, name)
	}
	sort.Strings(s.themeNames)

	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return s
}

// Handler returns the route table. It is exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /story/{id...}", s.handleStory)
	mux.HandleFunc("GET /raw/{id...}", s.handleRaw)
	return mux
}

// ListenAndServe runs the server until the context ends, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	s.log.WithFields(map[string]any{"addr": s.addr, "stories": s.registry.Len()}).Info("gallery server listening")
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown gallery server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve gallery: %w", err)
	}
}

// builderFor resolves a theme query value to a class builder, falling back
// to the default theme for unknown names.
func (s *Server) builderFor(name string) (string, *tailwind.Builder) {
	if name == "" {
		name = "default"
	}
	if b, ok := s.builders[name]; ok {
		return name, b
	}
	s.log.Warnf("unknown theme %q, using default", name)
	return "default", s.builders["default"]
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	theme, _ := s.builderFor(r.URL.Query().Get("theme"))
	page := indexPage(s.registry.List(), s.themeNames, theme)
	templ.Handler(page).ServeHTTP(w, r)
}

func (s *Server) handleStory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	story, err := s.registry.Get(id)
	if err != nil {
		s.log.WithStory(id).Debug("story not found")
		http.NotFound(w, r)
		return
	}

	theme, builder := s.builderFor(r.URL.Query().Get("theme"))
	markup, err := gallery.Render(r.Context(), story, builder)
	if err != nil {
		s.log.WithStory(id).Error(err, "story render failed")
		http.Error(w, "story render failed", http.StatusInternalServerError)
		return
	}

	page := storyPage(story, markup, s.registry.List(), s.themeNames, theme)
	templ.Handler(page).ServeHTTP(w, r)
}

// handleRaw serves a story without the gallery chrome, suitable for
// embedding or snapshotting.
func (s *Server) handleRaw(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	story, err := s.registry.Get(id)
	if err != nil {
		s.log.WithStory(id).Debug("story not found")
		http.NotFound(w, r)
		return
	}

	_, builder := s.builderFor(r.URL.Query().Get("theme"))
	markup, err := gallery.Render(r.Context(), story, builder)
	if err != nil {
		s.log.WithStory(id).Error(err, "story render failed")
		http.Error(w, "story render failed", http.StatusInternalServerError)
		return
	}

	templ.Handler(rawPage(story, markup)).ServeHTTP(w, r)
}
