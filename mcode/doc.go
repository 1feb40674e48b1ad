// Package mcode implements MCODE-style vertex weighting over a
// node/edge-weighted undirected graph (graph.Graph).
//
// Each vertex is scored by the density of the densest neighborhood it
// anchors:
//
//  1. Baseline: weight = (Σ incident edge weights) / deg² — the local
//     edge-density of the vertex itself.
//  2. Core refinement: take the closed neighborhood (the vertex plus its
//     neighbors) and peel it to its k-core for k = 2, 3, ... until the core
//     empties. The highest surviving core yields
//
//     weight = k · (Σ weights of edges vertex→core members) / |core|²
//
//     replacing the baseline. Vertices whose closed neighborhood has at
//     most two members, or no 2-core at all, keep the baseline.
//
// The scores feed seed selection for density-based cluster growing; they
// are an independent weighting pass and do not interact with the MCL
// engine's state.
//
// Complexity: O(V · d³) worst case, where d is the maximum degree — each
// closed neighborhood is peeled with an O(|core|²) filter per k.
package mcode
