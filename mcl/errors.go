// Package mcl: sentinel error set.
// All exported operations return these sentinels and tests check them via
// errors.Is. Context, when essential, is added with fmt.Errorf("...: %w", ErrX)
// at the boundary; callers still match with errors.Is.
package mcl

import "errors"

var (
	// ErrNilMatrix indicates a nil matrix was passed to an operation.
	ErrNilMatrix = errors.New("mcl: matrix is nil")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("mcl: matrix is not square")

	// ErrBadExpansion indicates an expansion power below 1.
	ErrBadExpansion = errors.New("mcl: expansion power must be >= 1")

	// ErrBadInflation indicates a non-positive or non-finite inflation power.
	ErrBadInflation = errors.New("mcl: inflation power must be positive and finite")

	// ErrBadLoopValue indicates a negative or non-finite self-loop value.
	ErrBadLoopValue = errors.New("mcl: loop value must be non-negative and finite")

	// ErrBadIterations indicates a negative iteration cap.
	ErrBadIterations = errors.New("mcl: iteration cap must be >= 0")

	// ErrBadThreshold indicates a negative or non-finite pruning threshold.
	ErrBadThreshold = errors.New("mcl: pruning threshold must be non-negative and finite")

	// ErrBadFrequency indicates a pruning or convergence-check cadence below 1.
	ErrBadFrequency = errors.New("mcl: cadence must be >= 1")
)
