package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrEmptyNodeID indicates a node was referenced with the empty string.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrSelfLoopNotAllowed indicates a self-loop was added to a graph built
	// without WithLoops().
	ErrSelfLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrBadEdgeWeight indicates a NaN or ±Inf edge weight at ingestion.
	ErrBadEdgeWeight = errors.New("graph: edge weight must be finite")
)
