// Package mclgo is an in-memory Markov Clustering (MCL) toolkit:
// feed it a weighted similarity matrix, get back a hard partition
// of your entities into clusters.
//
// 🚀 What is mclgo?
//
//	A small, deterministic library built on gonum dense matrices:
//		• MCL engine: normalize, expand, inflate, prune — iterated to a fixed point
//		• Cluster extraction: attractor scan with canonical, deduplicated output
//		• Graph substrate: lean weighted undirected graph + adjacency adapter
//		• MCODE-style vertex weighting over node/edge-weighted graphs
//		• CSV matrix loading/saving and a small CLI (cmd/mclgo)
//
// ✨ Why choose mclgo?
//
//   - Deterministic – stable ordering everywhere, no hidden randomness
//   - Honest errors – sentinel errors matched with errors.Is, no panics on input
//   - Pure Go + gonum – BLAS-backed matrix powers, nothing exotic
//   - Tested – every operation is covered by black-box tests and examples
//
// The module is organized as flat topic packages:
//
//	mcl/      — the Markov Clustering engine and cluster extraction
//	graph/    — weighted undirected graph primitives
//	mcode/    — vertex weighting (k-core density) over graph.Graph
//	matrixio/ — CSV readers/writers and graph→matrix adapters
//	cmd/      — the mclgo command-line front end
//
// Quick sketch:
//
//	    A───B        ┌ 1 1 0 ┐            [[A B] [C]]
//	    │            │ 1 1 0 │  ── MCL ──▶
//	    C            └ 0 0 1 ┘
//
// See mcl/example_test.go for a complete, runnable walkthrough.
//
//	go get github.com/katalvlaran/mclgo
package mclgo
