package mcode

import (
	"errors"

	"github.com/katalvlaran/mclgo/graph"
)

// ErrNilGraph indicates a nil *graph.Graph was passed to VertexWeighting.
var ErrNilGraph = errors.New("mcode: graph is nil")

// VertexWeighting assigns every node of g a density score via
// SetNodeWeight, in two passes.
//
// Stage 1 (Baseline): weight = (Σ incident edge weights) / deg²;
// isolated nodes score 0.
// Stage 2 (Core refinement): for each node with a closed neighborhood of
// more than two members, peel that neighborhood to its k-core for
// ascending k until it empties; the highest non-empty core (k, C) replaces
// the baseline with k · (Σ weights of edges node→C) / |C|². Nodes with no
// 2-core keep their baseline.
//
// The node itself may be peeled out of its own neighborhood core; the edge
// sum then simply ranges over the members it is still adjacent to.
//
// Returns ErrNilGraph; otherwise nil — both passes are total over a
// well-formed graph.
func VertexWeighting(g *graph.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	ids := g.Nodes()

	// Stage 1: baseline density per node.
	for _, id := range ids {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return err
		}
		if len(nbrs) == 0 {
			if err = g.SetNodeWeight(id, 0); err != nil {
				return err
			}

			continue
		}

		var sum float64
		var w float64
		for _, n := range nbrs {
			if w, err = g.EdgeWeight(id, n); err != nil {
				return err
			}
			sum += w
		}
		if err = g.SetNodeWeight(id, sum/float64(len(nbrs)*len(nbrs))); err != nil {
			return err
		}
	}

	// Stage 2: highest k-core of each closed neighborhood.
	for _, id := range ids {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return err
		}

		closed := make(map[string]struct{}, len(nbrs)+1)
		closed[id] = struct{}{}
		for _, n := range nbrs {
			closed[n] = struct{}{}
		}
		if len(closed) <= 2 {
			continue // nothing denser than a single edge here
		}

		// Peel to successive k-cores; cores nest, so each level starts
		// from the previous one.
		core := closed
		bestK := 0
		var bestCore map[string]struct{}
		for k := 2; len(core) > 0; k++ {
			core = coreFilter(core, k, g)
			if len(core) == 0 {
				break
			}
			bestK = k
			bestCore = core
		}
		if bestK == 0 {
			continue // no 2-core: baseline stands
		}

		var sum float64
		var w float64
		for member := range bestCore {
			if member == id || !g.HasEdge(id, member) {
				continue
			}
			if w, err = g.EdgeWeight(id, member); err != nil {
				return err
			}
			sum += w
		}

		weight := float64(bestK) * sum / float64(len(bestCore)*len(bestCore))
		if err = g.SetNodeWeight(id, weight); err != nil {
			return err
		}
	}

	return nil
}

// coreFilter returns the k-core of members: the maximal subset in which
// every node has at least k neighbors inside the subset. Repeatedly removes
// under-connected nodes until the set is stable (or empty).
func coreFilter(members map[string]struct{}, k int, g *graph.Graph) map[string]struct{} {
	out := make(map[string]struct{}, len(members))
	for m := range members {
		out[m] = struct{}{}
	}

	removed := true
	for removed && len(out) > 0 {
		removed = false

		var invalid []string
		for n := range out {
			inside := 0
			for m := range out {
				if m != n && g.HasEdge(n, m) {
					inside++
				}
			}
			if inside < k {
				invalid = append(invalid, n)
			}
		}

		for _, n := range invalid {
			delete(out, n)
			removed = true
		}
	}

	return out
}
