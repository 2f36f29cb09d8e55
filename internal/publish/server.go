// Package publish serves a read-only snapshot of a note vault over HTTP.
//
// The endpoints produce exactly the JSON blob the snapshot store consumes,
// so a published vault can be re-opened elsewhere in read-only mode by
// pointing it at /notes.json.
package publish

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"scrib/pkg/core"
)

// Handlers exposes the read-only HTTP surface of a note service.
type Handlers struct {
	svc    *core.Service
	logger *slog.Logger
}

func NewHandlers(svc *core.Service, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{svc: svc, logger: logger}
}

func (h *Handlers) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/notes.json", h.notes)
	r.Get("/tags.json", h.tags)

	return r
}

func (h *Handlers) notes(w http.ResponseWriter, r *http.Request) {
	q := core.Query{
		Text: r.URL.Query().Get("q"),
	}

	if tags := r.URL.Query().Get("tag"); tags != "" {
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				q.Tags = append(q.Tags, t)
			}
		}
	}

	// Unknown sort values fall back to the default order.
	q.Sort = core.ParseSortMode(r.URL.Query().Get("sort"))

	notes, err := h.svc.List(r.Context(), q)
	if err != nil {
		h.logger.Error("listing notes for publish", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if notes == nil {
		notes = []core.Note{}
	}
	writeJSON(w, http.StatusOK, notes)
}

func (h *Handlers) tags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.Tags(r.Context())
	if err != nil {
		h.logger.Error("listing tags for publish", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if tags == nil {
		tags = []core.TagCount{}
	}
	writeJSON(w, http.StatusOK, tags)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Serve runs the publish server until ctx is cancelled, then shuts it
// down gracefully.
func Serve(ctx context.Context, addr string, svc *core.Service, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewHandlers(svc, logger).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("publish server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
