package tsp

import "github.com/katalvlaran/tourgraph/dijkstra"

// Sentinel errors, shared with dijkstra so errors.Is works at any level.
var (
	ErrNilGraph      = dijkstra.ErrNilGraph
	ErrInvalidSpot   = dijkstra.ErrInvalidSpot
	ErrInvalidMetric = dijkstra.ErrInvalidMetric
)

// Unreachable is the Result.Weight reported when any leg cannot be walked.
const Unreachable = dijkstra.Unreachable

// Result holds the outcome of Plan.
type Result struct {
	// Weight is the summed metric over every leg, or Unreachable.
	Weight int64

	// Spots is the concatenated route from start to target.
	Spots []int

	// Order lists the must-pass spots in the sequence they were visited.
	Order []int
}

// Reachable reports whether r describes an actual route.
func (r Result) Reachable() bool { return r.Weight != Unreachable }

func unreachable() Result {
	return Result{Weight: Unreachable, Spots: []int{}, Order: []int{}}
}
