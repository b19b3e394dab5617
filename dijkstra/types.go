package dijkstra

import (
	"errors"

	"github.com/katalvlaran/tourgraph/core"
)

// Sentinel errors returned by ShortestPath. The spot and metric sentinels
// alias core's so errors.Is matches at either level.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidSpot indicates an endpoint that is out of range or soft-deleted.
	ErrInvalidSpot = core.ErrInvalidSpot

	// ErrInvalidMetric indicates a weight selector other than distance or duration.
	ErrInvalidMetric = core.ErrInvalidMetric
)

// Unreachable is the Result.Weight reported when no route exists.
const Unreachable int64 = -1

// Result is the outcome of a single-pair query.
//
// Weight is the summed metric along Spots, or Unreachable.
// Spots lists spot ids from start to target inclusive; empty when unreachable.
type Result struct {
	Weight int64
	Spots  []int
}

// Reachable reports whether r describes an actual route.
func (r Result) Reachable() bool { return r.Weight != Unreachable }

// unreachable builds the sentinel result.
func unreachable() Result {
	return Result{Weight: Unreachable, Spots: []int{}}
}
