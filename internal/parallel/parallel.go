// Package parallel provides parallel execution utilities for elementwise kernels.
package parallel

import (
	"golang.org/x/sync/errgroup"

	"github.com/born-ml/compare/internal/config"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns the configuration read from the environment.
func DefaultConfig() Config {
	n := int(config.NumThreads())
	return Config{
		Enabled:      config.Parallel(true) && n > 1,
		NumWorkers:   n,
		MinChunkSize: int(config.GrainSize()),
	}
}

// Sequential returns a configuration that never spawns goroutines.
func Sequential() Config {
	return Config{NumWorkers: 1, MinChunkSize: 1}
}

// For executes f(start, end) over disjoint ranges covering [0, n).
// Falls back to a single sequential call if parallelism is disabled or n is too small.
func For(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < 2*cfg.MinChunkSize {
		f(0, n)
		return
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(func() error {
			f(start, end)
			return nil
		})
	}
	_ = g.Wait()
}
