package localfile

import (
	"context"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string `json:"path"`
	File          string `json:"file"`
	ReadOnly      bool   `json:"read_only"`
	WatcherActive bool   `json:"watcher_active"`
	Notes         int    `json:"notes"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	count := 0
	if notes, err := s.Load(context.Background()); err == nil {
		count = len(notes)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return StoreState{
		Path:          s.Path,
		File:          s.File(),
		ReadOnly:      s.config.ReadOnly,
		WatcherActive: s.watcherActive,
		Notes:         count,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "localfile"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
