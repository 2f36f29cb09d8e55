package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Service handles the business logic for notes on top of a Repository.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
	newID  func() string

	mu sync.RWMutex
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source. Used by tests to make timestamp
// assertions deterministic.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDSource overrides the identifier generator.
func WithIDSource(fn func() string) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewService creates a new Service.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:   repo,
		logger: slog.Default(),
		now:    time.Now,
		newID:  NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create appends a new note to the store. The identifier is assigned here
// and never changes afterwards.
//
// Mutations serialize on the service mutex: the store is one blob, so a
// concurrent load-modify-replace would lose writes.
func (s *Service) Create(ctx context.Context, title, content string, tags []string) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := Note{
		ID:        s.newID(),
		Title:     title,
		Content:   content,
		Tags:      NormalizeTags(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	notes, err := s.repo.Load(ctx)
	if err != nil {
		return Note{}, err
	}
	notes = append(notes, n)
	if err := s.repo.Replace(ctx, notes); err != nil {
		return Note{}, err
	}

	s.logger.Debug("note created", "id", n.ID, "title", n.Title)
	return n, nil
}

// Update mutates an existing note in place. The identifier and creation
// timestamp are preserved; UpdatedAt is refreshed.
func (s *Service) Update(ctx context.Context, id, title, content string, tags []string) (Note, error) {
	if id == "" {
		return Note{}, errors.New("note ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.repo.Load(ctx)
	if err != nil {
		return Note{}, err
	}

	for i := range notes {
		if notes[i].ID != id {
			continue
		}
		notes[i].Title = title
		notes[i].Content = content
		notes[i].Tags = NormalizeTags(tags)
		notes[i].Touch(s.now())

		if err := s.repo.Replace(ctx, notes); err != nil {
			return Note{}, err
		}
		s.logger.Debug("note updated", "id", id)
		return notes[i], nil
	}

	return Note{}, fmt.Errorf("update %s: %w", id, ErrNotFound)
}

// Get retrieves a note by its ID.
func (s *Service) Get(ctx context.Context, id string) (Note, error) {
	if id == "" {
		return Note{}, errors.New("note ID cannot be empty")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	notes, err := s.repo.Load(ctx)
	if err != nil {
		return Note{}, err
	}
	for _, n := range notes {
		if n.ID == id {
			return n, nil
		}
	}
	return Note{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
}

// Delete removes a note by its ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("note ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	kept := notes[:0]
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notes) {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}

	if err := s.repo.Replace(ctx, kept); err != nil {
		return err
	}
	s.logger.Debug("note deleted", "id", id)
	return nil
}

// Clear removes every note from the store.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Replace(ctx, []Note{}); err != nil {
		return err
	}
	s.logger.Debug("store cleared")
	return nil
}

// List returns the displayed note list for the given query.
// The result is recomputed from scratch on every call.
func (s *Service) List(ctx context.Context, q Query) ([]Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return q.Apply(notes), nil
}

// Tags derives the tag catalog across all notes.
func (s *Service) Tags(ctx context.Context) ([]TagCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return CountTags(notes), nil
}

// Export serializes the full note list to w as a JSON array, in insertion
// order.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	data, err := EncodeList(notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// ExportFile writes a timestamped JSON export into dir and returns the
// path of the created file.
func (s *Service) ExportFile(ctx context.Context, dir string) (string, error) {
	name := fmt.Sprintf("scrib-export-%s.json", s.now().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := s.Export(ctx, f); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// Import reads a JSON array of note records from r, normalizes every
// entry and replaces the entire store. This is a destructive overwrite,
// not a merge. On any parse or validation error the store is left
// untouched. It returns the number of imported notes.
func (s *Service) Import(ctx context.Context, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read import: %w", err)
	}

	notes, err := DecodeList(data, s.now())
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Replace(ctx, notes); err != nil {
		return 0, err
	}
	s.logger.Info("store replaced from import", "notes", len(notes))
	return len(notes), nil
}

// Watch observes external changes to the store if the repository
// supports it.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx, pattern)
}
