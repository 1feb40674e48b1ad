// Package matrixio constructs and persists the dense matrices the MCL
// engine consumes: CSV readers/writers for square similarity matrices, a
// graph→adjacency adapter over graph.Graph, and a cluster emitter.
//
// The engine itself (package mcl) is I/O-free; everything that touches
// files, readers, or writers lives here.
//
// Determinism: FromGraph orders rows/columns by ascending node ID, and the
// returned label slice is the inverse of that ordering, so matrix indices
// translate back to node IDs without ambiguity.
//
// Errors follow the module convention: package-prefixed sentinels
// (ErrEmptyInput, ErrNotSquare, ErrBadValue, ...) matched via errors.Is,
// with positional context wrapped on top where it helps diagnosis.
package matrixio
