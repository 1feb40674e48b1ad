package matrixio

import "errors"

var (
	// ErrEmptyInput indicates the CSV source contained no records.
	ErrEmptyInput = errors.New("matrixio: input is empty")

	// ErrNotSquare indicates the CSV row count does not match its column count.
	ErrNotSquare = errors.New("matrixio: matrix is not square")

	// ErrBadValue indicates a CSV cell that does not parse as a float.
	ErrBadValue = errors.New("matrixio: value is not a number")

	// ErrNilMatrix indicates a nil matrix was passed to a writer.
	ErrNilMatrix = errors.New("matrixio: matrix is nil")

	// ErrNilGraph indicates a nil *graph.Graph was passed to FromGraph.
	ErrNilGraph = errors.New("matrixio: graph is nil")

	// ErrEmptyGraph indicates FromGraph was called on a graph with no nodes.
	ErrEmptyGraph = errors.New("matrixio: graph has no nodes")

	// ErrLabelRange indicates a cluster member index outside the label slice.
	ErrLabelRange = errors.New("matrixio: cluster index outside label range")
)
