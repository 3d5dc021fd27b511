// Package web provides a local HTTP API around the checker.
//
// The server validates one filing on start and keeps the result in memory.
// With watching enabled, any change to the filing, its ledger export or its
// prior year triggers a re-validation and a "reload" server-sent event.
// Ad-hoc documents can be checked through POST /api/check.
//
// SECURITY WARNING: This server has no authentication and should only be
// bound to localhost (127.0.0.1). Do not expose it to untrusted networks.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/robinvdvleuten/zeicheck/loader"
	"github.com/robinvdvleuten/zeicheck/model"
	"github.com/robinvdvleuten/zeicheck/report"
	"github.com/robinvdvleuten/zeicheck/rules"
	"github.com/robinvdvleuten/zeicheck/telemetry"
)

type Server struct {
	Port         int
	Host         string
	Version      string
	CommitSHA    string
	WatchEnabled bool

	registry *rules.Registry
	config   *rules.Config
	loader   *loader.Loader

	// inputFile is the xtx path passed to New.
	inputFile string

	mu      sync.RWMutex
	current *DiagnosticsResponse
	taxRet  model.TaxReturn
	files   []string

	// SSE clients for broadcasting reload events
	sseClients map[chan string]struct{}
	sseMu      sync.Mutex
}

// Option configures a Server.
type Option func(*Server)

// WithRegistry sets the rules to run. Defaults to rules.Default().
func WithRegistry(reg *rules.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// WithConfig sets the resolved configuration. Defaults to rules.NewConfig().
func WithConfig(cfg *rules.Config) Option {
	return func(s *Server) {
		s.config = cfg
	}
}

// WithLoader sets the loader used for the watched filing, which carries
// the ledger export and prior year.
func WithLoader(ldr *loader.Loader) Option {
	return func(s *Server) {
		s.loader = ldr
	}
}

// WithVersion sets the build identification reported by /api/version.
func WithVersion(version, commitSHA string) Option {
	return func(s *Server) {
		s.Version = version
		s.CommitSHA = commitSHA
	}
}

// WithWatch enables re-validation on file changes.
func WithWatch() Option {
	return func(s *Server) {
		s.WatchEnabled = true
	}
}

func New(port int, file string, opts ...Option) *Server {
	s := &Server{
		Port:       port,
		Host:       "127.0.0.1",
		inputFile:  file,
		registry:   rules.Default(),
		config:     rules.NewConfig(),
		loader:     loader.New(),
		sseClients: make(map[chan string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Start(ctx context.Context) error {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("web.start %s:%d", s.Host, s.Port))

	if s.inputFile == "" {
		timer.End()
		return fmt.Errorf("xtx file is required")
	}

	loadTimer := timer.Child(fmt.Sprintf("web.check %s", filepath.Base(s.inputFile)))
	if err := s.reload(ctx); err != nil {
		loadTimer.End()
		timer.End()
		return fmt.Errorf("failed to check %s: %w", s.inputFile, err)
	}
	loadTimer.End()

	if s.WatchEnabled {
		if err := s.startWatcher(ctx); err != nil {
			timer.End()
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
	}

	mux := s.setupRouter()
	timer.End()

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("listening", "addr", addr, "file", s.inputFile, "watch", s.WatchEnabled)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) setupRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/version", s.handleGetVersion)
	mux.HandleFunc("GET /api/rules", s.handleGetRules)
	mux.HandleFunc("GET /api/rules/{id...}", s.handleGetRule)
	mux.HandleFunc("GET /api/diagnostics", s.handleGetDiagnostics)
	mux.HandleFunc("GET /api/return", s.handleGetReturn)
	mux.HandleFunc("POST /api/check", s.handlePostCheck)
	mux.HandleFunc("GET /api/events", s.handleSSE)

	return mux
}

// reload re-checks the watched filing. A filing that fails to load is kept
// as an error response; only an unreadable filing on the first load is
// returned as an error.
// Caller must NOT hold the mutex - this method acquires it internally.
func (s *Server) reload(ctx context.Context) error {
	result, err := s.loader.Load(ctx, s.inputFile)
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.current == nil {
			return err
		}
		errJSON := report.NewErrorJSON(err)
		s.current = &DiagnosticsResponse{
			Report:    report.NewReport(s.inputFile, nil),
			Error:     &errJSON,
			CheckedAt: time.Now(),
		}
		s.taxRet = nil
		slog.Warn("re-check failed", "file", s.inputFile, "error", err)
		return nil
	}

	diags := s.run(ctx, result.Return, result.PriorYear)

	s.mu.Lock()
	s.current = &DiagnosticsResponse{
		Report:    report.NewReport(s.inputFile, diags),
		CheckedAt: time.Now(),
	}
	s.taxRet = result.Return
	s.files = result.Files
	s.mu.Unlock()

	slog.Debug("checked", "file", s.inputFile, "diagnostics", len(diags))
	return nil
}

func (s *Server) run(ctx context.Context, r, prior model.TaxReturn) []rules.Diagnostic {
	return rules.NewRunner(s.registry).Run(ctx, &rules.Context{
		TaxReturn: r,
		PriorYear: prior,
		Config:    s.config,
	})
}

// startWatcher watches every file of the filing and re-checks on change.
func (s *Server) startWatcher(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	s.mu.RLock()
	filesToWatch := append([]string(nil), s.files...)
	s.mu.RUnlock()

	for _, file := range filesToWatch {
		if err := watcher.Add(file); err != nil {
			slog.Warn("failed to watch file", "file", file, "error", err)
		}
	}

	go s.runWatcher(ctx, watcher)

	return nil
}

// runWatcher processes file system events with debouncing.
func (s *Server) runWatcher(ctx context.Context, watcher *fsnotify.Watcher) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		_ = watcher.Close()
	}()

	// Editors often write files in multiple steps.
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// Remove/Rename are common in atomic saves.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("file changed", "file", event.Name, "op", event.Op.String())

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				s.handleFileChange(ctx, watcher)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("file watcher error", "error", err)
		}
	}
}

// handleFileChange re-checks the filing, re-adds the watches and notifies
// the connected clients.
func (s *Server) handleFileChange(ctx context.Context, watcher *fsnotify.Watcher) {
	if err := s.reload(ctx); err != nil {
		slog.Error("failed to re-check", "file", s.inputFile, "error", err)
		return
	}

	s.mu.RLock()
	files := append([]string(nil), s.files...)
	s.mu.RUnlock()

	// Re-add to catch files re-created by atomic saves.
	for _, file := range files {
		if err := watcher.Add(file); err != nil {
			slog.Warn("failed to watch file", "file", file, "error", err)
		}
	}

	s.broadcast("reload")
}

// handleSSE handles Server-Sent Events connections for real-time updates.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	clientChan := make(chan string, 10)

	s.sseMu.Lock()
	s.sseClients[clientChan] = struct{}{}
	s.sseMu.Unlock()

	defer func() {
		s.sseMu.Lock()
		delete(s.sseClients, clientChan)
		s.sseMu.Unlock()
	}()

	_, _ = fmt.Fprintf(w, "data: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event := <-clientChan:
			_, _ = fmt.Fprintf(w, "data: %s\n\n", event)
			flusher.Flush()
		}
	}
}

// broadcast sends an event to all connected SSE clients.
func (s *Server) broadcast(event string) {
	s.sseMu.Lock()
	defer s.sseMu.Unlock()

	for clientChan := range s.sseClients {
		select {
		case clientChan <- event:
		default:
			// Client buffer full, skip
		}
	}
}
