package mcl_test

import "gonum.org/v1/gonum/mat"

// sevenNodeInput returns the canonical 7-node two-community similarity
// matrix: nodes {0,1,2} and {3,4,5,6} form dense blocks bridged by the
// single 2–3 edge.
func sevenNodeInput() *mat.Dense {
	return mat.NewDense(7, 7, []float64{
		1, 1, 1, 0, 0, 0, 0,
		1, 1, 1, 0, 0, 0, 0,
		1, 1, 1, 1, 0, 0, 0,
		0, 0, 1, 1, 1, 0, 1,
		0, 0, 0, 1, 1, 1, 1,
		0, 0, 0, 0, 1, 1, 1,
		0, 0, 0, 1, 1, 1, 1,
	})
}

// sevenNodeTerminal returns the known fixed point of MCL on sevenNodeInput
// under expansion 2, inflation 2.0, loop value 1.0: node 2 attracts the
// first community, nodes 4 and 6 share the second.
func sevenNodeTerminal() *mat.Dense {
	return mat.NewDense(7, 7, []float64{
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
		1, 1, 1, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0.5, 0.5, 0.5, 0.5,
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0.5, 0.5, 0.5, 0.5,
	})
}

// threeBlockInput returns a 9-node matrix of three disconnected all-ones
// triangles: {0,1,2}, {3,4,5}, {6,7,8}.
func threeBlockInput() *mat.Dense {
	m := mat.NewDense(9, 9, nil)
	for b := 0; b < 3; b++ {
		for i := 3 * b; i < 3*b+3; i++ {
			for j := 3 * b; j < 3*b+3; j++ {
				m.Set(i, j, 1)
			}
		}
	}

	return m
}
