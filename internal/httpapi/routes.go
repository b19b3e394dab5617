package httpapi

import (
	"net/http"

	"github.com/katalvlaran/tourgraph/builder"
	"github.com/katalvlaran/tourgraph/core"
)

// DefaultWalkLimit caps GET /routes/all when no limit is given.
const DefaultWalkLimit = 100

type routeQuery struct {
	From   string `query:"from" validate:"required"`
	To     string `query:"to" validate:"required"`
	Metric string `query:"metric" validate:"omitempty,oneof=distance duration"`
}

type backboneQuery struct {
	Metric string `query:"metric" validate:"omitempty,oneof=distance duration"`
	Method string `query:"method" validate:"omitempty,oneof=kruskal prim"`
}

type chartQuery struct {
	Metric string `query:"metric" validate:"omitempty,oneof=distance duration"`
}

// PlanRequest is the body of POST /api/v1/routes/plan.
type PlanRequest struct {
	From     string   `json:"from" validate:"required"`
	To       string   `json:"to" validate:"required"`
	MustPass []string `json:"must_pass" validate:"dive,required"`
	Metric   string   `json:"metric" validate:"omitempty,oneof=distance duration"`
}

// SeedRequest is the optional body of POST /api/v1/seed.
type SeedRequest struct {
	Seed *int64 `json:"seed"`
}

// shortestPath handles GET /routes/shortest?from=&to=&metric=
func (rt *Router) shortestPath(w http.ResponseWriter, r *http.Request) {
	q := readRouteQuery(r)
	if err := rt.validate.Struct(q); err != nil {
		rt.respondError(w, r, err)
		return
	}

	view, err := rt.catalog.ShortestPath(r.Context(), q.From, q.To, metricOrDefault(q.Metric))
	if err != nil {
		rt.respondError(w, r, err)
		return
	}
	rt.respondJSON(w, http.StatusOK, view)
}

// allPaths handles GET /routes/all?from=&to=&limit=
func (rt *Router) allPaths(w http.ResponseWriter, r *http.Request) {
	q := readRouteQuery(r)
	if err := rt.validate.Struct(q); err != nil {
		rt.respondError(w, r, err)
		return
	}
	limit, err := intParam(r, "limit", DefaultWalkLimit)
	if err != nil {
		rt.respondError(w, r, err)
		return
	}

	walks, err := rt.catalog.AllPaths(r.Context(), q.From, q.To, limit)
	if err != nil {
		rt.respondError(w, r, err)
		return
	}
	rt.respondJSON(w, http.StatusOK, walks)
}

// plan handles POST /routes/plan
func (rt *Router) plan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := rt.validate.decode(r, &req); err != nil {
		rt.respondError(w, r, err)
		return
	}

	view, err := rt.catalog.Plan(r.Context(), req.From, req.To, req.MustPass, metricOrDefault(req.Metric))
	if err != nil {
		rt.respondError(w, r, err)
		return
	}
	rt.respondJSON(w, http.StatusOK, view)
}

// backbone handles GET /routes/backbone?metric=&method=
func (rt *Router) backbone(w http.ResponseWriter, r *http.Request) {
	q := backboneQuery{Metric: r.URL.Query().Get("metric"), Method: r.URL.Query().Get("method")}
	if err := rt.validate.Struct(q); err != nil {
		rt.respondError(w, r, err)
		return
	}

	view, err := rt.catalog.Backbone(r.Context(), metricOrDefault(q.Metric), q.Method)
	if err != nil {
		rt.respondError(w, r, err)
		return
	}
	rt.respondJSON(w, http.StatusOK, view)
}

// trails handles GET /routes/trails?from=&to=
func (rt *Router) trails(w http.ResponseWriter, r *http.Request) {
	q := pairQuery{From: r.URL.Query().Get("from"), To: r.URL.Query().Get("to")}
	if err := rt.validate.Struct(q); err != nil {
		rt.respondError(w, r, err)
		return
	}

	view, err := rt.catalog.Trails(r.Context(), q.From, q.To)
	if err != nil {
		rt.respondError(w, r, err)
		return
	}
	rt.respondJSON(w, http.StatusOK, view)
}

// chart handles GET /routes/chart?metric=
func (rt *Router) chart(w http.ResponseWriter, r *http.Request) {
	q := chartQuery{Metric: r.URL.Query().Get("metric")}
	if err := rt.validate.Struct(q); err != nil {
		rt.respondError(w, r, err)
		return
	}

	view, err := rt.catalog.Chart(r.Context(), metricOrDefault(q.Metric))
	if err != nil {
		rt.respondError(w, r, err)
		return
	}
	rt.respondJSON(w, http.StatusOK, view)
}

// stats handles GET /stats
func (rt *Router) stats(w http.ResponseWriter, r *http.Request) {
	rt.respondJSON(w, http.StatusOK, rt.catalog.Stats(r.Context()))
}

// seed handles POST /seed. An empty body uses the default seed.
func (rt *Router) seed(w http.ResponseWriter, r *http.Request) {
	seed := builder.DefaultSeed
	if r.ContentLength != 0 {
		var req SeedRequest
		if err := rt.validate.decode(r, &req); err != nil {
			rt.respondError(w, r, err)
			return
		}
		if req.Seed != nil {
			seed = *req.Seed
		}
	}

	if err := rt.catalog.Seed(r.Context(), seed); err != nil {
		rt.respondError(w, r, err)
		return
	}
	rt.respondJSON(w, http.StatusOK, rt.catalog.Stats(r.Context()))
}

func readRouteQuery(r *http.Request) routeQuery {
	v := r.URL.Query()

	return routeQuery{From: v.Get("from"), To: v.Get("to"), Metric: v.Get("metric")}
}

func metricOrDefault(m string) string {
	if m == "" {
		return core.MetricDistance.String()
	}

	return m
}
