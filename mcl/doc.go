// Package mcl implements the Markov Clustering (MCL) algorithm over dense,
// column-stochastic gonum matrices, plus cluster extraction from the
// resulting fixed point.
//
// 🚀 What is MCL?
//
//	MCL (Stijn van Dongen, University of Utrecht) simulates random walks on
//	a similarity graph. Alternating two matrix transforms separates the
//	graph into natural clusters:
//	  • Expansion — raise the matrix to an integer power, spreading flow
//	    along longer paths.
//	  • Inflation — elementwise power followed by column re-normalization,
//	    sharpening strong transitions against weak ones.
//	Iterated with periodic pruning, the matrix converges to a (near)
//	doubly-idempotent fixed point whose block structure is the clustering.
//
// ✨ Key features:
//   - column-wise L1 normalization with an explicit all-zero-column policy
//     (degenerate columns stay zero instead of turning into NaN)
//   - connectivity-preserving pruning: the per-column maximum always
//     survives the threshold
//   - configurable cadences for pruning and convergence checking
//   - deterministic, deduplicated cluster extraction (Clusters)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mclgo/mcl"
//
//	opts := mcl.DefaultOptions() // expansion=2, inflation=2.0, loop=1.0, ...
//	result, status, err := mcl.MCL(similarity, &opts)
//	if err != nil {
//	  // handle ErrNonSquare, ErrBadInflation, ...
//	}
//	clusters, _ := mcl.Clusters(result)
//	fmt.Println(status, clusters)
//
// Performance:
//
//   - Time:   O(iterations · expansion · N³) — the matrix multiply dominates
//   - Memory: O(N²) — the working matrix plus one previous-iteration snapshot
//
// The engine is single-threaded and synchronous; run independent matrices
// on separate goroutines if you need parallel clustering jobs.
package mcl
