// Package mcl: run configuration for the convergence loop.
package mcl

import "math"

// Defaults — single source of truth for DefaultOptions.
const (
	// DefaultExpansion is the matrix power used by the expansion step.
	DefaultExpansion = 2

	// DefaultInflation is the elementwise power used by the inflation step.
	DefaultInflation = 2.0

	// DefaultLoopValue seeds every diagonal entry before the first
	// normalization, so isolated nodes keep a self-transition.
	DefaultLoopValue = 1.0

	// DefaultMaxIterations caps the convergence loop.
	DefaultMaxIterations = 100

	// DefaultPruningThreshold zeroes entries below it (column max excepted).
	DefaultPruningThreshold = 0.001

	// DefaultPruningFrequency applies pruning every iteration.
	DefaultPruningFrequency = 1

	// DefaultConvergenceCheckFrequency tests convergence every iteration.
	DefaultConvergenceCheckFrequency = 1
)

// ConvergenceEpsilon is the absolute entrywise tolerance of the
// fixed-point test: the loop stops once every |current−previous| entry
// is within this bound.
const ConvergenceEpsilon = 1e-8

// Options configures a Markov Clustering run.
//
// Fields:
//   - Expansion     — integer matrix power for the expansion step (≥ 1).
//   - Inflation     — elementwise power for the inflation step (> 0).
//   - LoopValue     — diagonal seed applied once before normalization;
//     0 disables the self-loop pass entirely (must be ≥ 0).
//   - MaxIterations — iteration cap (≥ 0). A cap of 0 returns the
//     post-initialization matrix unmodified.
//   - PruningThreshold — entries strictly below it are zeroed (≥ 0);
//     the per-column maximum is always retained.
//   - PruningFrequency — prune every Nth iteration (≥ 1).
//   - ConvergenceCheckFrequency — compare against the previous iteration
//     every Nth iteration (≥ 1).
//   - OnIteration — optional hook invoked after every completed iteration
//     with its index and whether the convergence test passed on it.
//     Useful for progress reporting; nil disables it.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Inflation = 1.6          // coarser clusters
//	opts.PruningThreshold = 1e-4  // keep more mass around
//	result, status, err := MCL(m, &opts)
type Options struct {
	Expansion                 int
	Inflation                 float64
	LoopValue                 float64
	MaxIterations             int
	PruningThreshold          float64
	PruningFrequency          int
	ConvergenceCheckFrequency int
	OnIteration               func(iteration int, converged bool)
}

// DefaultOptions returns the canonical MCL parameterization
// (expansion 2, inflation 2.0, self-loop 1.0, 100 iterations,
// pruning and convergence checks every iteration).
func DefaultOptions() Options {
	return Options{
		Expansion:                 DefaultExpansion,
		Inflation:                 DefaultInflation,
		LoopValue:                 DefaultLoopValue,
		MaxIterations:             DefaultMaxIterations,
		PruningThreshold:          DefaultPruningThreshold,
		PruningFrequency:          DefaultPruningFrequency,
		ConvergenceCheckFrequency: DefaultConvergenceCheckFrequency,
	}
}

// validate checks every field against its documented domain and returns
// the matching sentinel error, or nil when the configuration is usable.
func (o *Options) validate() error {
	if o.Expansion < 1 {
		return ErrBadExpansion
	}
	if o.Inflation <= 0 || math.IsNaN(o.Inflation) || math.IsInf(o.Inflation, 0) {
		return ErrBadInflation
	}
	if o.LoopValue < 0 || math.IsNaN(o.LoopValue) || math.IsInf(o.LoopValue, 0) {
		return ErrBadLoopValue
	}
	if o.MaxIterations < 0 {
		return ErrBadIterations
	}
	if o.PruningThreshold < 0 || math.IsNaN(o.PruningThreshold) || math.IsInf(o.PruningThreshold, 0) {
		return ErrBadThreshold
	}
	if o.PruningFrequency < 1 || o.ConvergenceCheckFrequency < 1 {
		return ErrBadFrequency
	}

	return nil
}
