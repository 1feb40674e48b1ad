// Package mcl: the four matrix transforms of the MCL pipeline plus the
// self-loop seeding pass. Every exported operation validates its inputs
// and returns sentinel errors; the unexported *InPlace helpers carry the
// arithmetic and assume already-validated arguments.
package mcl

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Normalize returns a column-wise L1 normalization of m: every column is
// divided by the sum of absolute values of its entries, so nonnegative
// columns become stochastic (sum to 1).
//
// Degenerate-input policy: a column whose entries are all exactly zero has
// scale 0; the scale is substituted with 1 so the column stays all-zero
// rather than turning into NaN.
//
// Complexity: O(r·c) time, O(r·c) memory for the copy.
func Normalize(m mat.Matrix) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	out := mat.DenseCopyOf(m)
	normalizeInPlace(out)

	return out, nil
}

// normalizeInPlace rescales every column of d by its L1 norm, substituting
// a unit scale for all-zero columns.
func normalizeInPlace(d *mat.Dense) {
	r, c := d.Dims()
	col := make([]float64, r)
	var j int
	for j = 0; j < c; j++ {
		mat.Col(col, j, d)
		scale := floats.Norm(col, 1)
		if scale == 0 {
			scale = 1 // all-zero column stays all-zero, never NaN
		}
		floats.Scale(1/scale, col)
		d.SetCol(j, col)
	}
}

// AddSelfLoop sets, in place, every diagonal entry of m to loopValue.
// Applied once before the first normalization it guarantees each entity a
// baseline self-affinity, so an isolated node's column never normalizes
// to all-zero.
//
// The caller must own m exclusively for the duration of the call.
// Returns ErrNilMatrix, ErrNonSquare, or ErrBadLoopValue on bad input.
//
// Complexity: O(n) time.
func AddSelfLoop(m *mat.Dense, loopValue float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	r, c := m.Dims()
	if r != c {
		return ErrNonSquare
	}
	if loopValue < 0 || math.IsNaN(loopValue) || math.IsInf(loopValue, 0) {
		return ErrBadLoopValue
	}

	for i := 0; i < r; i++ {
		m.Set(i, i, loopValue)
	}

	return nil
}

// Expand returns the power-th matrix power of m, computed as power−1
// successive multiplications of the running product by m. Expansion lets
// transition mass propagate along paths of length power; power 1 returns
// an unchanged copy.
//
// Returns ErrNilMatrix, ErrBadExpansion (power < 1), or ErrNonSquare.
//
// Complexity: O((power−1)·n³) time, O(n²) memory.
func Expand(m mat.Matrix, power int) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if power < 1 {
		return nil, ErrBadExpansion
	}
	r, c := m.Dims()
	if r != c {
		return nil, ErrNonSquare
	}

	out := mat.DenseCopyOf(m)
	for k := 1; k < power; k++ {
		next := &mat.Dense{}
		next.Mul(out, m)
		out = next
	}

	return out, nil
}

// Inflate raises every entry of m to the real exponent power and re-normalizes
// the result column-wise. Inflation sharpens the distribution: strong
// transitions gain mass at the expense of weak ones, which is what
// eventually splits the matrix into disjoint blocks.
//
// Inflate(m, 1) is therefore exactly Normalize(m).
//
// Returns ErrNilMatrix or ErrBadInflation (power ≤ 0 or non-finite).
//
// Complexity: O(r·c) time.
func Inflate(m mat.Matrix, power float64) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if power <= 0 || math.IsNaN(power) || math.IsInf(power, 0) {
		return nil, ErrBadInflation
	}

	out := &mat.Dense{}
	out.Apply(func(_, _ int, v float64) float64 {
		return math.Pow(v, power)
	}, m)
	normalizeInPlace(out)

	return out, nil
}

// Prune zeroes every entry of m strictly below threshold, except that the
// single largest entry of each column is always preserved at its original
// value, threshold or not. Thresholding alone can empty a column, which
// would break the next normalization; retaining the column maximum keeps
// at least one outgoing edge per column.
//
// Tie-break: when several entries share the column maximum, the one at the
// lowest row index survives (floats.MaxIdx returns the first maximum).
//
// Returns ErrNilMatrix or ErrBadThreshold (negative or non-finite).
//
// Complexity: O(r·c) time.
func Prune(m mat.Matrix, threshold float64) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if threshold < 0 || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return nil, ErrBadThreshold
	}

	out := mat.DenseCopyOf(m)
	pruneInPlace(out, threshold)

	return out, nil
}

// pruneInPlace applies the thresholding rule of Prune directly to d.
func pruneInPlace(d *mat.Dense, threshold float64) {
	r, c := d.Dims()
	col := make([]float64, r)
	var i, j int
	for j = 0; j < c; j++ {
		mat.Col(col, j, d)
		keep := floats.MaxIdx(col) // first maximum wins ties
		for i = 0; i < r; i++ {
			if i != keep && col[i] < threshold {
				col[i] = 0
			}
		}
		d.SetCol(j, col)
	}
}
