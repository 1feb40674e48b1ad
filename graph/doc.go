// Package graph provides a lean, thread-safe, undirected weighted graph:
// float64 weights on both nodes and edges, deterministic (sorted) accessors,
// and sentinel errors matched with errors.Is.
//
// It is the substrate for the vertex-weighting family (package mcode) and
// for building dense similarity matrices (package matrixio): node weights
// hold per-vertex scores, edge weights hold pairwise similarity.
//
// All mutating and reading APIs take an internal sync.RWMutex, so a Graph
// can be shared across goroutines.
//
// Defaults: self-loops are rejected (ErrSelfLoopNotAllowed); construct with
// WithLoops() to permit them. Edge weights must be finite; NaN and ±Inf are
// rejected at ingestion with ErrBadEdgeWeight. Duplicate edges overwrite
// (last write wins), which keeps adjacency-matrix export single-valued.
package graph
