package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	ckerrors "github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string
	noCache   bool
	redisAddr string
}

// serveCommand creates the serve command: an HTTP rendering service backed
// by the same pipeline as the render command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP chart rendering service",
		Long: `Serve exposes the rendering pipeline over HTTP.

POST /render with a JSON body {"config": "<toml>", "data": "<csv>"} returns
the rendered SVG. GET /healthz reports service health.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for the render cache (default: file cache)")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()

	runner, err := c.newRunner(ctx, opts.noCache, opts.redisAddr)
	if err != nil {
		return err
	}
	defer runner.Close()

	srv := &server{runner: runner, cli: c}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(srv.requestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", srv.handleHealth)
	r.Post("/render", srv.handleRender)

	httpServer := &http.Server{
		Addr:              opts.addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Shut down when the command context is cancelled (SIGINT/SIGTERM).
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	c.Logger.Info("serving", "addr", opts.addr)
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// server holds the handler dependencies.
type server struct {
	runner *pipeline.Runner
	cli    *CLI
}

// requestID tags each request with a UUID and a request-scoped logger.
func (s *server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		logger := s.cli.Logger.With("request_id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r.WithContext(withLogger(r.Context(), logger)))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// renderRequest is the POST /render body.
type renderRequest struct {
	Config  string  `json:"config"`
	Data    string  `json:"data"`
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
	Debug   bool    `json:"debug,omitempty"`
	Refresh bool    `json:"refresh,omitempty"`
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	start := time.Now()
	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		ConfigTOML: []byte(req.Config),
		DataCSV:    []byte(req.Data),
		Width:      req.Width,
		Height:     req.Height,
		Debug:      req.Debug,
		Refresh:    req.Refresh,
		Logger:     logger,
	})
	if err != nil {
		logger.Error("render failed", "error", err)
		writeError(w, statusForError(err), ckerrors.UserMessage(err))
		return
	}

	logger.Info("rendered",
		"rows", result.Stats.RowCount,
		"marks", result.Stats.MarkCount,
		"cached", result.CacheInfo.RenderHit,
		"duration", time.Since(start))

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Length", strconv.Itoa(len(result.SVG)))
	if result.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	_, _ = w.Write(result.SVG)
}

// statusForError maps pipeline error codes to HTTP status codes.
func statusForError(err error) int {
	code := ckerrors.GetCode(err)
	switch {
	case code == ckerrors.ErrCodeNotFound || code == ckerrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case strings.HasPrefix(string(code), "INVALID_"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
