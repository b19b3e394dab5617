// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/tourgraph/core"
)

// inf marks "no path" inside the buffer.
const inf = int64(math.MaxInt64)

// Distances computes the all-pairs chart of g under metric.
//
// Steps:
//  1. Collect live spot ids in ascending order and map each to a row.
//  2. Fill the buffer: 0 on the diagonal, the cheapest direct path weight
//     for adjacent pairs, inf otherwise.
//  3. Close it in place with Floyd-Warshall.
//
// Errors: ErrGraphNil, ErrInvalidMetric.
func Distances(g *core.Graph, metric core.Metric) (*Table, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := metric.Validate(); err != nil {
		return nil, err
	}

	spots := g.Spots()
	t := &Table{IDs: make([]int, len(spots)), n: len(spots)}
	row := make(map[int]int, len(spots))
	for i, s := range spots {
		t.IDs[i] = s.ID
		row[s.ID] = i
	}

	t.data = make([]int64, t.n*t.n)
	for i := range t.data {
		t.data[i] = inf
	}
	for i := 0; i < t.n; i++ {
		t.data[i*t.n+i] = 0
	}
	for _, e := range g.Edges() {
		i, j := row[e.From], row[e.To]
		w := e.Weight(metric)
		if w < t.data[i*t.n+j] {
			t.data[i*t.n+j] = w
			t.data[j*t.n+i] = w
		}
	}

	floydWarshallInPlace(t.data, t.n)

	return t, nil
}

// floydWarshallInPlace relaxes every pair through every intermediate k.
// Loop order is fixed (k → i → j); only strict improvements are written.
func floydWarshallInPlace(data []int64, n int) {
	var ik, kj, cand int64
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == inf {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == inf {
					continue
				}
				if cand = ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}
