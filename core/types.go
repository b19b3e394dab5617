// Package core defines the central Graph, Spot, and Path types of a scenic
// area, and provides thread-safe primitives for building and querying it.
//
// This file declares Spot, Path, Edge, Metric, Graph, the functional options
// used by ModifySpot/ModifyPath, the sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidSpot      - spot id out of range or soft-deleted.
//	ErrNameNotFound     - no non-deleted spot carries the requested name.
//	ErrDuplicateName    - a non-deleted spot already carries the name.
//	ErrInvalidMetric    - weight selector is neither "distance" nor "duration".
//	ErrEmptyName        - spot name is the empty string.
//	ErrBadWeight        - non-positive distance or duration.
//	ErrLoopNotAllowed   - a path from a spot to itself.
//	ErrPathNotFound     - no path connects the two spots.
//	ErrCorruptDocument  - a persisted document violates the graph invariants.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidSpot indicates a spot id that is out of range or soft-deleted.
	ErrInvalidSpot = errors.New("core: spot id is invalid or deleted")

	// ErrNameNotFound indicates that no non-deleted spot has the requested name.
	ErrNameNotFound = errors.New("core: spot name not found")

	// ErrDuplicateName indicates that a non-deleted spot already uses the name.
	ErrDuplicateName = errors.New("core: spot name already exists")

	// ErrInvalidMetric indicates a weight selector other than distance or duration.
	ErrInvalidMetric = errors.New("core: metric must be \"distance\" or \"duration\"")

	// ErrEmptyName indicates that a spot name is empty.
	ErrEmptyName = errors.New("core: spot name is empty")

	// ErrBadWeight indicates a distance or duration that is not strictly positive.
	ErrBadWeight = errors.New("core: path weights must be positive")

	// ErrLoopNotAllowed indicates a path whose endpoints are the same spot.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrPathNotFound indicates that the two spots are not directly connected.
	ErrPathNotFound = errors.New("core: path not found")

	// ErrCorruptDocument indicates a persisted document that breaks the graph invariants.
	ErrCorruptDocument = errors.New("core: corrupt graph document")
)

// Metric selects which Path weight an algorithm minimises.
type Metric string

const (
	// MetricDistance weighs paths by their length in meters.
	MetricDistance Metric = "distance"

	// MetricDuration weighs paths by their walking time in minutes.
	MetricDuration Metric = "duration"
)

// ParseMetric converts s into a Metric, returning ErrInvalidMetric for
// anything other than "distance" or "duration".
func ParseMetric(s string) (Metric, error) {
	m := Metric(s)
	if err := m.Validate(); err != nil {
		return "", err
	}

	return m, nil
}

// Validate reports ErrInvalidMetric unless m is a known selector.
func (m Metric) Validate() error {
	switch m {
	case MetricDistance, MetricDuration:
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidMetric, string(m))
	}
}

// String returns the selector name.
func (m Metric) String() string { return string(m) }

// Path is one half of an undirected connection, stored in the adjacency list
// of its source spot. Its twin lives in the list of Target.
type Path struct {
	// Target is the id of the spot this path leads to.
	Target int

	// Distance is the path length in meters.
	Distance int64

	// Duration is the walking time in minutes.
	Duration int64
}

// Weight returns the Distance or Duration of p according to m.
// Unknown metrics fall back to Distance; callers validate m beforehand.
func (p Path) Weight(m Metric) int64 {
	if m == MetricDuration {
		return p.Duration
	}

	return p.Distance
}

// Spot represents a point of interest in the scenic area.
//
// ID equals the spot's position in the Graph arena and is never reused.
// Deleted spots keep their slot and adjacency entries; every traversal
// must filter them out through Graph.IsValid.
type Spot struct {
	// ID is the dense, zero-based identifier assigned at creation.
	ID int

	// Name is unique among non-deleted spots.
	Name string

	// Description is free text shown to visitors.
	Description string

	// Deleted is the soft-delete tombstone.
	Deleted bool

	// Paths is the ordered adjacency list of outgoing path halves.
	Paths []Path
}

// clone returns a deep copy of s so callers never alias the arena.
func (s *Spot) clone() Spot {
	out := *s
	out.Paths = append([]Path(nil), s.Paths...)

	return out
}

// Edge is a de-duplicated view of one undirected connection (From < To).
type Edge struct {
	From     int
	To       int
	Distance int64
	Duration int64
}

// Weight returns the Distance or Duration of e according to m.
func (e Edge) Weight(m Metric) int64 {
	return Path{Distance: e.Distance, Duration: e.Duration}.Weight(m)
}

// SpotOption configures a ModifySpot call. Omitted fields stay unchanged.
type SpotOption func(*spotPatch)

type spotPatch struct {
	name        *string
	description *string
}

// WithName renames the spot.
func WithName(name string) SpotOption {
	return func(p *spotPatch) { p.name = &name }
}

// WithDescription replaces the spot description.
func WithDescription(description string) SpotOption {
	return func(p *spotPatch) { p.description = &description }
}

// PathOption configures a ModifyPath call. Omitted weights stay unchanged.
type PathOption func(*pathPatch)

type pathPatch struct {
	distance *int64
	duration *int64
}

// WithDistance replaces the path distance.
func WithDistance(distance int64) PathOption {
	return func(p *pathPatch) { p.distance = &distance }
}

// WithDuration replaces the path duration.
func WithDuration(duration int64) PathOption {
	return func(p *pathPatch) { p.duration = &duration }
}

// Graph is the in-memory arena of spots and their mirrored adjacency lists.
//
// spots[i].ID == i for every i. mu guards spots and revision; every exported
// method takes the lock itself, so a Graph can be shared across goroutines.
// Multi-step operations that must observe one consistent state are the
// caller's responsibility (see internal/portal).
type Graph struct {
	mu sync.RWMutex

	spots    []*Spot // arena; index == Spot.ID
	revision uint64  // bumped on each successful mutation
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{spots: make([]*Spot, 0)}
}
