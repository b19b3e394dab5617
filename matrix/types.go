// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tourgraph/core"
)

// Unreachable is reported by At for pairs with no connecting route.
const Unreachable int64 = -1

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrInvalidMetric aliases core.ErrInvalidMetric.
	ErrInvalidMetric = core.ErrInvalidMetric

	// ErrOutOfRange is returned by At for indices outside the chart.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// Table is a dense n×n chart of shortest route weights. Row and column i
// both correspond to spot IDs[i].
type Table struct {
	IDs  []int
	n    int
	data []int64
}

// Size returns the number of rows (and columns).
func (t *Table) Size() int { return t.n }

// At returns the weight from row i to column j, or Unreachable.
func (t *Table) At(i, j int) (int64, error) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, i, j, t.n, t.n)
	}
	if v := t.data[i*t.n+j]; v != inf {
		return v, nil
	}

	return Unreachable, nil
}

// Row returns a copy of row i with Unreachable for missing routes.
func (t *Table) Row(i int) ([]int64, error) {
	if i < 0 || i >= t.n {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, i, t.n)
	}
	out := make([]int64, t.n)
	for j := range out {
		out[j], _ = t.At(i, j)
	}

	return out, nil
}

// Index returns the row of spot id, or -1 when id is not in the chart.
func (t *Table) Index(id int) int {
	for i, v := range t.IDs {
		if v == id {
			return i
		}
	}

	return -1
}
