// Package twin implements an in-memory behavioural twin of the placeholder REST API.
// It serves deterministic fixtures so the demo and its tests run without network access.
package twin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jonathan/api-demo/internal/types"
)

// RequestIDHeader carries the client-generated request id.
const RequestIDHeader = "X-Request-ID"

// Config holds the twin's behaviour knobs.
type Config struct {
	Port    int
	Latency time.Duration
	// LatencyFunc overrides Latency per request when set.
	LatencyFunc func(r *http.Request) time.Duration
	// FailPaths maps a path prefix to the status code returned for it.
	FailPaths map[string]int
}

// Twin is the placeholder API server.
type Twin struct {
	Router *chi.Mux
	ReqLog *RequestLog

	cfg    Config
	logger *slog.Logger
	users  []types.User
	posts  []types.Post
}

// New creates a Twin with seeded fixtures. A nil logger falls back to slog.Default().
func New(cfg Config, logger *slog.Logger) *Twin {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Twin{
		Router: chi.NewRouter(),
		ReqLog: NewRequestLog(1000),
		cfg:    cfg,
		logger: logger,
		users:  Users(),
		posts:  Posts(),
	}
	t.routes()
	return t
}

func (t *Twin) routes() {
	r := t.Router
	r.Use(chimw.Recoverer)

	r.Group(func(r chi.Router) {
		r.Use(t.requestLog)
		r.Use(t.latency)
		r.Use(t.faults)

		r.Get("/posts", t.listPosts)
		r.Post("/posts", t.createPost)
		r.Get("/posts/{id}", t.getPost)
		r.Get("/users", t.listUsers)
		r.Get("/users/{id}", t.getUser)
	})

	r.Get("/admin/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/admin/requests", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, t.ReqLog.Entries())
	})
	r.Post("/admin/reset", func(w http.ResponseWriter, _ *http.Request) {
		t.ReqLog.Clear()
		writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
	})
}

// ServeHTTP makes the twin usable with httptest.NewServer.
func (t *Twin) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	t.Router.ServeHTTP(w, r)
}

// Start listens on the configured port and serves until ctx is cancelled, then
// drains in-flight requests.
func (t *Twin) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", t.cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", t.cfg.Port, err)
	}

	srv := &http.Server{
		Handler:      t,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		t.logger.Info("twin listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("twin server error: %w", err)
	case <-ctx.Done():
	}

	t.logger.Info("shutting down twin")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("twin shutdown failed: %w", err)
	}
	t.logger.Info("twin stopped")
	return nil
}

func (t *Twin) getPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok || id < 1 || id > len(t.posts) {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, t.posts[id-1])
}

func (t *Twin) listPosts(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("userId")
	if raw == "" {
		writeJSON(w, http.StatusOK, t.posts)
		return
	}
	out := make([]types.Post, 0, PostsPerUser)
	if uid, err := strconv.Atoi(raw); err == nil {
		for _, p := range t.posts {
			if p.UserID == uid {
				out = append(out, p)
			}
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (t *Twin) createPost(w http.ResponseWriter, r *http.Request) {
	var in map[string]any
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		in = map[string]any{}
	}
	in["id"] = CreatedPostID
	writeJSON(w, http.StatusCreated, in)
}

func (t *Twin) listUsers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, t.users)
}

func (t *Twin) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok || id < 1 || id > len(t.users) {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, t.users[id-1])
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}

// notFound mirrors the real API, which answers unknown ids with 404 and an empty object.
func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]any{})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
