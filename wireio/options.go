// File: wireio/options.go
// Package wireio defines functional options for Runtime initialization.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package wireio

import (
	"github.com/momentics/wireio/internal/obslog"
)

// config collects everything an Option can set, mirroring the shape of
// ioloop.Options one layer up so Init can stay a thin translator.
type config struct {
	numWorkers        int
	logger            obslog.Logger
	responseBatchSize int
	pinWorkers        bool
}

// Option customizes Runtime initialization.
type Option func(*config)

// WithWorkers sets the worker-thread pool size (spec's sole init
// parameter, n_workers).
func WithWorkers(n int) Option {
	return func(c *config) {
		c.numWorkers = n
	}
}

// WithLogger overrides the default stderr logrus logger.
func WithLogger(l obslog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithResponseBatchSize overrides the response fiber's per-drain batch
// size (ambient tuning knob; spec.md does not name this, ioloop defaults
// it to 32 when left at zero).
func WithResponseBatchSize(n int) Option {
	return func(c *config) {
		c.responseBatchSize = n
	}
}

// WithWorkerAffinity pins each worker thread to a distinct logical CPU
// (worker i to CPU i) using the teacher's affinity package. Best-effort:
// platforms without an affinity implementation only log a warning.
func WithWorkerAffinity() Option {
	return func(c *config) {
		c.pinWorkers = true
	}
}
