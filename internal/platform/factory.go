package platform

import (
	"scrib/pkg/core"
)

// New builds a fully wired note service on top of the configured store.
// The URI argument is adapter-specific: a directory path for the local
// store, ignored in published mode.
func New(uri string, opts ...Option) (*core.Service, error) {
	// 1. Initialize environment (path resolution, directories, snapshot)
	repo, err := Init(uri, opts...)
	if err != nil {
		return nil, err
	}

	// Parse options again here to forward ambient settings to the service.
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var svcOpts []core.ServiceOption
	if o.logger != nil {
		svcOpts = append(svcOpts, core.WithLogger(o.logger))
	}
	if o.now != nil {
		svcOpts = append(svcOpts, core.WithClock(o.now))
	}

	return core.NewService(repo, svcOpts...), nil
}
