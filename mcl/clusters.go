package mcl

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Clusters reads the hard partition off a terminal MCL matrix.
//
// Stage 1 (Attractors): scan the diagonal; every index with a nonzero
// diagonal entry is an attractor.
// Stage 2 (Basins): for each attractor a, the cluster it induces is the set
// of column indices with a nonzero entry in row a. Two attractors inducing
// identical membership collapse to a single cluster (dedup by exact set
// equality on the canonical sorted form).
// Stage 3 (Canonicalize): member indices are ascending by construction;
// clusters are ordered lexicographically by content, so the result is
// independent of attractor discovery order.
//
// Entities outside every attractor's basin are absent from the partition;
// total coverage of all N indices is not guaranteed.
//
// Returns ErrNilMatrix or ErrNonSquare on bad input.
//
// Complexity: O(n²) time, O(n) memory per cluster.
func Clusters(m mat.Matrix) ([][]int, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if r != c {
		return nil, ErrNonSquare
	}

	seen := make(map[string]struct{})
	clusters := make([][]int, 0)
	var a, j int
	for a = 0; a < r; a++ {
		if m.At(a, a) == 0 {
			continue // not an attractor
		}

		members := make([]int, 0, c)
		for j = 0; j < c; j++ {
			if m.At(a, j) != 0 {
				members = append(members, j)
			}
		}

		// members is sorted ascending by construction, so its string form
		// is a canonical dedup key for set equality.
		key := fmt.Sprint(members)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		clusters = append(clusters, members)
	}

	slices.SortFunc(clusters, slices.Compare)

	return clusters, nil
}
