package mcl_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mclgo/mcl"
)

// TestNormalize_ColumnsSumToOne verifies that every column of a matrix with
// no all-zero column is stochastic after normalization.
func TestNormalize_ColumnsSumToOne(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		2, 0.5, 1,
		1, 0.5, 0,
		1, 4.0, 3,
	})

	got, err := mcl.Normalize(m)
	require.NoError(t, err)

	col := make([]float64, 3)
	for j := 0; j < 3; j++ {
		mat.Col(col, j, got)
		assert.InDelta(t, 1.0, floats.Sum(col), 1e-8, "column %d must sum to 1", j)
	}
}

// TestNormalize_ReferenceValues pins normalization against precomputed
// values, including a negative entry (scale is the sum of absolute values).
func TestNormalize_ReferenceValues(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{
		-0.02630925, 0.34560928,
		0.49153899, 0.37912572,
	})
	want := mat.NewDense(2, 2, []float64{
		-0.05080494, 0.47687676,
		0.94919506, 0.52312324,
	})

	got, err := mcl.Normalize(m)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(want, got, 1e-8), "normalized values mismatch:\n%v", mat.Formatted(got))
}

// TestNormalize_AllZeroColumnStaysZero verifies the division-by-zero guard:
// an all-zero column must remain all-zero, never NaN.
func TestNormalize_AllZeroColumnStaysZero(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{
		1, 0,
		2, 0,
		1, 0,
	})

	got, err := mcl.Normalize(m)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Zero(t, got.At(i, 1), "zero column entry (%d,1) must stay zero", i)
		assert.False(t, math.IsNaN(got.At(i, 1)), "zero column must not become NaN")
	}
}

// TestNormalize_NilMatrix verifies the nil-input sentinel.
func TestNormalize_NilMatrix(t *testing.T) {
	_, err := mcl.Normalize(nil)
	assert.ErrorIs(t, err, mcl.ErrNilMatrix)
}

// TestAddSelfLoop_SetsDiagonal verifies the in-place diagonal write and that
// off-diagonal entries are untouched.
func TestAddSelfLoop_SetsDiagonal(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		0, 2, 3,
		4, 0, 6,
		7, 8, 0,
	})

	require.NoError(t, mcl.AddSelfLoop(m, 1.5))

	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.5, m.At(i, i), "diagonal (%d,%d)", i, i)
	}
	assert.Equal(t, 2.0, m.At(0, 1), "off-diagonal must be untouched")
}

// TestAddSelfLoop_Errors covers the nil, non-square, and bad-value sentinels.
func TestAddSelfLoop_Errors(t *testing.T) {
	assert.ErrorIs(t, mcl.AddSelfLoop(nil, 1), mcl.ErrNilMatrix)

	rect := mat.NewDense(2, 3, nil)
	assert.ErrorIs(t, mcl.AddSelfLoop(rect, 1), mcl.ErrNonSquare)

	sq := mat.NewDense(2, 2, nil)
	assert.ErrorIs(t, mcl.AddSelfLoop(sq, -0.1), mcl.ErrBadLoopValue)
	assert.ErrorIs(t, mcl.AddSelfLoop(sq, math.NaN()), mcl.ErrBadLoopValue)
}

// TestExpand_PowerOneIsIdentity verifies that power 1 returns the matrix
// unchanged (as a fresh copy).
func TestExpand_PowerOneIsIdentity(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	got, err := mcl.Expand(m, 1)
	require.NoError(t, err)
	assert.True(t, mat.Equal(m, got), "Expand(m, 1) must equal m")

	got.Set(0, 0, 99)
	assert.Equal(t, 1.0, m.At(0, 0), "Expand must not alias the input")
}

// TestExpand_SquaresMatrix pins M² against a hand-computed product.
func TestExpand_SquaresMatrix(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	want := mat.NewDense(2, 2, []float64{7, 10, 15, 22})

	got, err := mcl.Expand(m, 2)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(want, got, 1e-12), "M² mismatch:\n%v", mat.Formatted(got))
}

// TestExpand_Cube pins M³ = M²·M.
func TestExpand_Cube(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	want := mat.NewDense(2, 2, []float64{37, 54, 81, 118})

	got, err := mcl.Expand(m, 3)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(want, got, 1e-12), "M³ mismatch:\n%v", mat.Formatted(got))
}

// TestExpand_Errors covers the nil, bad-power, and non-square sentinels.
func TestExpand_Errors(t *testing.T) {
	_, err := mcl.Expand(nil, 2)
	assert.ErrorIs(t, err, mcl.ErrNilMatrix)

	_, err = mcl.Expand(mat.NewDense(2, 2, nil), 0)
	assert.ErrorIs(t, err, mcl.ErrBadExpansion)

	_, err = mcl.Expand(mat.NewDense(2, 3, nil), 2)
	assert.ErrorIs(t, err, mcl.ErrNonSquare)
}

// TestInflate_PowerOneEqualsNormalize verifies Inflate(m, 1) == Normalize(m).
func TestInflate_PowerOneEqualsNormalize(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		1, 0, 2,
		3, 1, 2,
		0, 1, 4,
	})

	inflated, err := mcl.Inflate(m, 1)
	require.NoError(t, err)
	normalized, err := mcl.Normalize(m)
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(normalized, inflated, 1e-12), "Inflate(m,1) must equal Normalize(m)")
}

// TestInflate_SharpensColumn verifies that inflation shifts mass toward the
// stronger entry: [0.75, 0.25] squared and renormalized becomes [0.9, 0.1].
func TestInflate_SharpensColumn(t *testing.T) {
	m := mat.NewDense(2, 1, []float64{0.75, 0.25})

	got, err := mcl.Inflate(m, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.9, got.At(0, 0), 1e-12)
	assert.InDelta(t, 0.1, got.At(1, 0), 1e-12)
}

// TestInflate_Errors covers the nil and bad-power sentinels.
func TestInflate_Errors(t *testing.T) {
	_, err := mcl.Inflate(nil, 2)
	assert.ErrorIs(t, err, mcl.ErrNilMatrix)

	for _, power := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = mcl.Inflate(mat.NewDense(2, 2, nil), power)
		assert.ErrorIs(t, err, mcl.ErrBadInflation, "power=%v", power)
	}
}

// TestPrune_ReferenceValues pins the thresholding rule: entries below 2.5
// vanish, but the maximum of the middle column (2 < 2.5) survives.
func TestPrune_ReferenceValues(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		3, 1, 4,
	})
	want := mat.NewDense(2, 3, []float64{
		0, 2, 3,
		3, 0, 4,
	})

	got, err := mcl.Prune(m, 2.5)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(want, got, 1e-12), "pruned mismatch:\n%v", mat.Formatted(got))
}

// TestPrune_ColumnMaxAlwaysSurvives verifies that no threshold can empty a
// column: the maximum keeps its original value even when far below it.
func TestPrune_ColumnMaxAlwaysSurvives(t *testing.T) {
	m := mat.NewDense(3, 1, []float64{0.001, 0.003, 0.002})

	got, err := mcl.Prune(m, 100)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.At(0, 0))
	assert.Equal(t, 0.003, got.At(1, 0), "column max must keep its original value")
	assert.Equal(t, 0.0, got.At(2, 0))
}

// TestPrune_TieBreakFirstRow verifies that among equal column maxima the
// lowest row index survives.
func TestPrune_TieBreakFirstRow(t *testing.T) {
	m := mat.NewDense(3, 1, []float64{5, 5, 5})

	got, err := mcl.Prune(m, 6)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.At(0, 0), "first maximum must survive")
	assert.Equal(t, 0.0, got.At(1, 0))
	assert.Equal(t, 0.0, got.At(2, 0))
}

// TestPrune_Errors covers the nil and bad-threshold sentinels.
func TestPrune_Errors(t *testing.T) {
	_, err := mcl.Prune(nil, 0.1)
	assert.ErrorIs(t, err, mcl.ErrNilMatrix)

	_, err = mcl.Prune(mat.NewDense(2, 2, nil), -0.1)
	assert.ErrorIs(t, err, mcl.ErrBadThreshold)
}
