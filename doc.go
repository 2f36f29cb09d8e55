// Package scrib is the Composition Root for the scrib note widget.
//
// It connects the core business logic (Domain Layer) with the storage
// adapters (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Scrib treats a personal note collection as a single transactional blob.
// The whole vault is one JSON array on disk, written atomically, so the
// store survives crashes and concurrent readers always see a consistent
// snapshot. The core is storage-agnostic: the default adapter keeps the
// blob in a local file, and a read-only snapshot adapter serves a
// published copy over HTTP.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from persistence details.
//   - **Atomic Persistence**: The note blob is replaced via temp-file + rename.
//   - **Filter Pipeline**: Case-insensitive text search, tag globs, and stable sorting.
//   - **Published Mode**: Read-only snapshot store for sharing a static copy.
//   - **Watchable**: File-system change events surface as note-level CREATE/MODIFY/DELETE.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := scrib.New("./vault",
//		scrib.WithAutoInit(true),
//		scrib.WithLogger(logger),
//	)
//
//	// Create a note
//	note, err := svc.Create(ctx, "groceries", "milk, eggs", []string{"home"})
package scrib
