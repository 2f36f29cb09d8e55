package platform

import (
	"context"

	"scrib/pkg/adapters/localfile"
	"scrib/pkg/adapters/snapshot"
	"scrib/pkg/core"
)

// Init initializes the note store based on the provided configuration.
// The 'uri' argument is the vault directory for the local store; in
// published mode (WithSnapshot) it is ignored in favor of the snapshot
// source.
//
// It returns the configured core.Repository.
func Init(uri string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// 1. Check for injected repository
	if o.repository != nil {
		return o.repository, nil
	}

	// 2. Initialize based on mode
	var repo core.Repository
	if source, _ := o.config["snapshot"].(string); source != "" {
		repo = initSnapshot(source, o)
	} else {
		repo = initLocal(uri, o)
	}

	// 3. Run Initialization
	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return repo, nil
}

// initLocal handles the initialization logic for the local file store.
func initLocal(path string, o *options) core.Repository {
	autoInit, _ := o.config["auto_init"].(bool)
	mustExist, _ := o.config["must_exist"].(bool)
	tempDir, _ := o.config["temp_dir"].(bool)
	eventBuffer, _ := o.config["event_buffer"].(int)
	isReadOnly, _ := o.config["read_only"].(bool)

	// Default to true (safe) if not present.
	devSafety := true
	if val, ok := o.config["dev_safety"].(bool); ok {
		devSafety = val
	}

	// Bypass safety if:
	// 1. ReadOnly is active (inherently safe)
	// 2. User explicitly disabled DevSafety
	bypassSafety := isReadOnly || !devSafety

	useTemp := tempDir || (IsDevRun() && !bypassSafety)
	resolvedPath := ResolveVaultPath(path, useTemp)

	if IsDevRun() && o.logger != nil {
		if bypassSafety {
			if isReadOnly {
				o.logger.Debug("running in READ-ONLY mode (bypassing dev sandbox)", "path", resolvedPath)
			} else {
				o.logger.Warn("running in UNSAFE mode (bypassing dev sandbox)", "path", resolvedPath)
			}
		} else {
			o.logger.Debug("running in SAFE mode (dev sandbox enabled)", "path", resolvedPath)
		}
	}

	return localfile.NewStore(localfile.Config{
		Path:        resolvedPath,
		AutoInit:    autoInit,
		MustExist:   mustExist,
		ReadOnly:    isReadOnly,
		EventBuffer: eventBuffer,
		Logger:      o.logger,
		Now:         o.now,
	})
}

func initSnapshot(source string, o *options) core.Repository {
	var opts []snapshot.Option
	if o.logger != nil {
		opts = append(opts, snapshot.WithLogger(o.logger))
	}
	if o.now != nil {
		opts = append(opts, snapshot.WithClock(o.now))
	}
	return snapshot.NewStore(source, opts...)
}
