package platform

import (
	"log/slog"
	"time"

	"scrib/pkg/core"
)

// options holds the internal configuration for the scrib service.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	now        func() time.Time
	config     map[string]interface{}
}

// Option defines a functional option for configuring scrib.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		config: make(map[string]interface{}),
	}
}

// WithAutoInit enables automatic creation of the vault directory.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.config["auto_init"] = auto
	}
}

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.config["temp_dir"] = force
	}
}

// WithReadOnly enables read-only mode.
// In this mode:
//  1. Write operations (Create, Update, Delete, Clear, Import) return ErrReadOnly.
//  2. Initialization (mkdir) is skipped.
//  3. Dev Safety Lock (go run temp dir) is BYPASSED (uses the real path).
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.config["read_only"] = enabled
	}
}

// WithDevSafety controls the "sandbox" safety mechanism when running via
// `go run`. By default (true), scrib forces a temporary directory to
// prevent accidental data loss. Setting this to false allows operating on
// the real vault even during `go run`.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.config["dev_safety"] = enabled
	}
}

// WithSnapshot switches the store to published mode: the note list is
// fetched from the given http(s) URL or file path and every mutation is
// rejected.
func WithSnapshot(source string) Option {
	return func(o *options) {
		o.config["snapshot"] = source
	}
}

// WithEventBuffer sets the size of the watch event channel buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.config["event_buffer"] = size
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock).
// If provided, the default adapters are skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}
