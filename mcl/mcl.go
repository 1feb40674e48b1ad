package mcl

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Status reports how a Markov Clustering run terminated.
//
//   - Exhausted — the iteration cap was reached before the convergence test
//     passed. Not a failure: the returned matrix is a best-effort fixed point.
//   - Converged — two successive iterations agreed entrywise within
//     ConvergenceEpsilon.
type Status int

const (
	// Exhausted means MaxIterations elapsed without passing the convergence test.
	Exhausted Status = iota

	// Converged means the loop reached an entrywise fixed point.
	Converged
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Exhausted:
		return "Exhausted"
	case Converged:
		return "Converged"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MCL — Markov Clustering
//
// Description:
//
//	MCL partitions the entities behind a weighted similarity matrix by
//	simulating flow: expansion spreads transition mass along longer paths,
//	inflation sharpens strong transitions against weak ones, and periodic
//	pruning keeps the matrix from accumulating numeric dust. The loop stops
//	at a fixed point (Converged) or at the iteration cap (Exhausted).
//
// Algorithm Outline:
//  1. Init: when opts.LoopValue > 0, set the diagonal to it (AddSelfLoop);
//     normalize columns once.
//  2. For i = 0 .. MaxIterations-1:
//     a. snapshot the matrix as previous.
//     b. current = Inflate(Expand(current, Expansion), Inflation).
//     c. when i lands on the pruning cadence, Prune(current, PruningThreshold).
//     d. when i lands on the check cadence, compare current against previous
//     entrywise with absolute tolerance ConvergenceEpsilon; on success
//     stop with Converged.
//  3. Cap reached: stop with Exhausted and whatever matrix is current.
//
// MaxIterations = 0 degenerates to returning the post-init matrix.
//
// A nil opts runs DefaultOptions. The input matrix is never mutated; the
// returned matrix is freshly allocated.
//
// Errors: ErrNilMatrix, ErrNonSquare, or an option sentinel from validate
// (ErrBadExpansion, ErrBadInflation, ErrBadLoopValue, ErrBadIterations,
// ErrBadThreshold, ErrBadFrequency).
//
// Complexity:
//
//	Time   = O(MaxIterations · Expansion · N³)
//	Memory = O(N²) — working matrix plus one previous-iteration snapshot
func MCL(m mat.Matrix, opts *Options) (*mat.Dense, Status, error) {
	// Validate matrix
	if m == nil {
		return nil, Exhausted, ErrNilMatrix
	}
	r, c := m.Dims()
	if r != c {
		return nil, Exhausted, ErrNonSquare
	}

	// Apply options or defaults
	var o Options
	if opts == nil {
		o = DefaultOptions()
	} else {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, Exhausted, err
	}

	// Init: optional self-loop seed, then one normalization
	cur := mat.DenseCopyOf(m)
	if o.LoopValue > 0 {
		if err := AddSelfLoop(cur, o.LoopValue); err != nil {
			return nil, Exhausted, err
		}
	}
	normalizeInPlace(cur)

	// Looping
	prev := &mat.Dense{}
	for i := 0; i < o.MaxIterations; i++ {
		prev.CloneFrom(cur)

		cur = iterate(cur, o.Expansion, o.Inflation)

		if i%o.PruningFrequency == o.PruningFrequency-1 {
			pruneInPlace(cur, o.PruningThreshold)
		}

		converged := false
		if i%o.ConvergenceCheckFrequency == o.ConvergenceCheckFrequency-1 {
			converged = equalWithin(prev, cur, ConvergenceEpsilon)
		}

		if o.OnIteration != nil {
			o.OnIteration(i, converged)
		}
		if converged {
			return cur, Converged, nil
		}
	}

	return cur, Exhausted, nil
}

// iterate performs one expansion+inflation pass: cur^expansion, then
// elementwise power and column re-normalization. cur is left untouched.
func iterate(cur *mat.Dense, expansion int, inflation float64) *mat.Dense {
	// Expansion: expansion-1 successive multiplications by cur
	out := mat.Matrix(cur)
	for k := 1; k < expansion; k++ {
		next := &mat.Dense{}
		next.Mul(out, cur)
		out = next
	}

	// Inflation: elementwise power, then normalize
	infl := &mat.Dense{}
	infl.Apply(func(_, _ int, v float64) float64 {
		return math.Pow(v, inflation)
	}, out)
	normalizeInPlace(infl)

	return infl
}

// equalWithin reports whether a and b agree entrywise within the absolute
// tolerance tol. Shapes are assumed equal (loop invariant).
func equalWithin(a, b *mat.Dense, tol float64) bool {
	r, c := a.Dims()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if !scalar.EqualWithinAbs(a.At(i, j), b.At(i, j), tol) {
				return false
			}
		}
	}

	return true
}
