// Package snapshot implements core.Repository over a published, static
// snapshot of a note list. The snapshot is fetched once from an http(s)
// URL or read from a local file; every mutation returns ErrReadOnly.
package snapshot

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"scrib/pkg/core"
)

// Store serves a read-only snapshot of a note list.
type Store struct {
	Source string // http(s) URL or local file path

	client *http.Client
	logger *slog.Logger
	now    func() time.Time

	mu     sync.RWMutex
	notes  []core.Note
	loaded bool
}

// Option configures a snapshot Store.
type Option func(*Store)

// WithHTTPClient overrides the HTTP client used to fetch the snapshot.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Store) {
		if client != nil {
			s.client = client
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used for normalization defaults.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates a snapshot store for the given source.
func NewStore(source string, opts ...Option) *Store {
	s := &Store{
		Source: source,
		client: http.DefaultClient,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize fetches the snapshot. One fetch, no retries: a published
// snapshot either loads or the whole mode fails loudly.
func (s *Store) Initialize(ctx context.Context) error {
	return s.fetch(ctx)
}

// Load returns the cached snapshot, fetching it first if Initialize was
// skipped.
func (s *Store) Load(ctx context.Context) ([]core.Note, error) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if !loaded {
		if err := s.fetch(ctx); err != nil {
			return nil, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Note, len(s.notes))
	copy(out, s.notes)
	return out, nil
}

// Replace always fails: published snapshots are immutable.
func (s *Store) Replace(ctx context.Context, notes []core.Note) error {
	return core.ErrReadOnly
}

func (s *Store) fetch(ctx context.Context) error {
	data, err := s.read(ctx)
	if err != nil {
		return err
	}

	notes, err := core.DecodeList(data, s.now())
	if err != nil {
		return fmt.Errorf("invalid snapshot %s: %w", s.Source, err)
	}

	s.mu.Lock()
	s.notes = notes
	s.loaded = true
	s.mu.Unlock()

	s.logger.Debug("snapshot loaded", "source", s.Source, "notes", len(notes))
	return nil
}

func (s *Store) read(ctx context.Context) ([]byte, error) {
	if !isURL(s.Source) {
		data, err := os.ReadFile(s.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to read snapshot file: %w", err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("snapshot fetch returned %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot body: %w", err)
	}
	return data, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
