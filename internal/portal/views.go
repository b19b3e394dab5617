package portal

// SpotView is a spot as shown to visitors, with its currently walkable
// neighbours resolved to names.
type SpotView struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Neighbors   []NeighborView `json:"neighbors"`
}

// NeighborView is one outgoing path of a SpotView.
type NeighborView struct {
	Name     string `json:"name"`
	Distance int64  `json:"distance"`
	Duration int64  `json:"duration"`
}

// PathView is one undirected path between two live spots.
type PathView struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance int64  `json:"distance"`
	Duration int64  `json:"duration"`
}

// RouteView is a single-pair or planned route. Weight is -1 and Spots is
// empty when the destination cannot be reached.
type RouteView struct {
	Metric    string   `json:"metric"`
	Reachable bool     `json:"reachable"`
	Weight    int64    `json:"weight"`
	Spots     []string `json:"spots"`
}

// PlanView is a multi-stop route plus the order must-pass spots were visited.
type PlanView struct {
	RouteView
	Order []string `json:"order"`
}

// WalkView is one simple route with both totals.
type WalkView struct {
	Distance int64    `json:"distance"`
	Duration int64    `json:"duration"`
	Spots    []string `json:"spots"`
}

// ReachView lists the spots reachable from Start with their hop counts,
// in breadth-first order.
type ReachView struct {
	Start string     `json:"start"`
	Spots []HopsView `json:"spots"`
}

// HopsView is a reachable spot and its minimum number of stops.
type HopsView struct {
	Name string `json:"name"`
	Hops int    `json:"hops"`
}

// StatsView summarises the catalog.
type StatsView struct {
	Spots    int    `json:"spots"`
	Paths    int    `json:"paths"`
	Deleted  int    `json:"deleted"`
	Slots    int    `json:"slots"`
	Revision uint64 `json:"revision"`
}

// BackboneView is the cheapest set of paths keeping every live spot
// connected.
type BackboneView struct {
	Metric string     `json:"metric"`
	Method string     `json:"method"`
	Weight int64      `json:"weight"`
	Paths  []PathView `json:"paths"`
}

// GridRequest describes a terrain map to import. Zero fields take the
// gridgraph defaults; Connectivity is 4 or 8.
type GridRequest struct {
	Cells          [][]int `json:"cells" yaml:"cells"`
	Connectivity   int     `json:"connectivity,omitempty" yaml:"connectivity,omitempty"`
	Threshold      int     `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	CellSize       int64   `json:"cell_size,omitempty" yaml:"cell_size,omitempty"`
	MinutesPerUnit int64   `json:"minutes_per_unit,omitempty" yaml:"minutes_per_unit,omitempty"`
}

// ImportView reports what a grid import produced.
type ImportView struct {
	Spots   int `json:"spots"`
	Paths   int `json:"paths"`
	Islands int `json:"islands"`
}

// TrailsView counts the path-disjoint routes between two spots. Critical
// lists the smallest set of paths whose closure separates them.
type TrailsView struct {
	From       string     `json:"from"`
	To         string     `json:"to"`
	Count      int        `json:"count"`
	Bottleneck bool       `json:"bottleneck"`
	Critical   []PathView `json:"critical"`
}

// ChartView is the all-pairs shortest weight chart. Rows[i][j] is the
// cheapest total from Spots[i] to Spots[j], -1 when unreachable.
type ChartView struct {
	Metric string    `json:"metric"`
	Spots  []string  `json:"spots"`
	Rows   [][]int64 `json:"rows"`
}
