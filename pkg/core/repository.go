package core

import "context"

// Repository defines the contract for loading and persisting the note list.
// The store is a single flat blob: Load returns the full ordered list and
// Replace overwrites it wholesale. Fine-grained edits are composed by the
// Service as read-modify-write over these two primitives, which keeps the
// contract independent of the underlying storage (local file, published
// snapshot, in-memory mock).
type Repository interface {
	// Load returns every note in insertion order. Implementations
	// normalize records on the way in and degrade malformed storage to
	// an empty list rather than failing.
	Load(ctx context.Context) ([]Note, error)

	// Replace overwrites the entire store with the given list.
	// Read-only implementations return ErrReadOnly.
	Replace(ctx context.Context, notes []Note) error

	// Initialize ensures the underlying storage is ready
	// (e.g. create directories, fetch the published snapshot).
	Initialize(ctx context.Context) error
}

// Watchable defines an optional upgrade for repositories that can report
// changes made to the store outside this process.
type Watchable interface {
	// Watch emits one Event per changed note. The pattern filters which
	// store paths are observed (doublestar syntax); an empty pattern
	// watches everything.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
