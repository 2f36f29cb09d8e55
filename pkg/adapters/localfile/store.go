// Package localfile implements core.Repository over a single JSON-array
// blob stored in one file inside the vault directory. It is the
// local-storage analogue: one fixed key, the whole list read and written
// wholesale, malformed content degrading to an empty list.
package localfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"scrib/pkg/core"
)

// StoreFile is the fixed storage key: the blob filename inside the vault
// directory.
const StoreFile = "notes.json"

const defaultEventBuffer = 100

// Config holds the configuration for the local file store.
type Config struct {
	Path        string // vault directory
	AutoInit    bool
	MustExist   bool
	ReadOnly    bool
	EventBuffer int
	Logger      *slog.Logger
	Now         func() time.Time
}

// Store implements core.Repository using a single file on disk.
type Store struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
}

// NewStore creates a new local file store.
func NewStore(config Config) *Store {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = defaultEventBuffer
	}
	return &Store{Path: config.Path, config: config}
}

// File returns the full path of the storage blob.
func (s *Store) File() string {
	return filepath.Join(s.Path, StoreFile)
}

// Initialize prepares the vault directory.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.ReadOnly {
		// Read-only mode never creates anything; a missing vault simply
		// reads as empty.
		return nil
	}

	if s.config.MustExist {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("vault path does not exist: %s", s.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("vault path is not a directory: %s", s.Path)
		}
		return nil
	}

	if s.config.AutoInit {
		if err := os.MkdirAll(s.Path, 0755); err != nil {
			return fmt.Errorf("failed to create vault directory: %w", err)
		}
	}
	return nil
}

// Load reads the full note list from the blob.
// A missing file is an empty store. A blob that does not decode as a JSON
// array self-heals to an empty list; the next Replace writes valid JSON.
func (s *Store) Load(ctx context.Context) ([]core.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.File())
	if os.IsNotExist(err) {
		return []core.Note{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	notes, err := core.DecodeList(data, s.config.Now())
	if err != nil {
		s.config.Logger.Warn("store blob is malformed, starting empty",
			"file", s.File(), "error", err)
		return []core.Note{}, nil
	}
	return notes, nil
}

// Replace overwrites the blob with the given list, atomically.
func (s *Store) Replace(ctx context.Context, notes []core.Note) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}

	data, err := core.EncodeList(notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The vault directory may not exist yet when Initialize ran lazily.
	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create vault directory: %w", err)
	}

	if err := writeFileAtomic(s.File(), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	return nil
}
