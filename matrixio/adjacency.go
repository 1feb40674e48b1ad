package matrixio

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mclgo/graph"
)

// FromGraph builds the dense adjacency (similarity) matrix of g over its
// nodes in ascending ID order, returning the matrix and the index→ID label
// slice for translating cluster output back to node IDs.
//
// Stage 1 (Validate): non-nil, non-empty graph.
// Stage 2 (Index): sorted node IDs fix the row/column order.
// Stage 3 (Fill): entry (i,j) is the edge weight u_i—u_j, 0 when absent;
// undirected edges land symmetrically.
//
// Returns ErrNilGraph or ErrEmptyGraph.
//
// Complexity: O(V² ) memory, O(V log V + E) fill time.
func FromGraph(g *graph.Graph) (*mat.Dense, []string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	ids := g.Nodes()
	if len(ids) == 0 {
		return nil, nil, ErrEmptyGraph
	}

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	m := mat.NewDense(len(ids), len(ids), nil)
	for i, id := range ids {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return nil, nil, err
		}
		for _, n := range nbrs {
			w, werr := g.EdgeWeight(id, n)
			if werr != nil {
				return nil, nil, werr
			}
			m.Set(i, index[n], w)
		}
	}

	return m, ids, nil
}
