// Package httpapi exposes the portal service over a JSON REST API built on
// chi. Spots are addressed by name; every error is rendered as a JSON body
// with a status derived from the sentinel it wraps.
package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/katalvlaran/tourgraph/internal/observability"
	"github.com/katalvlaran/tourgraph/internal/portal"
)

// Catalog is the application surface the handlers need. *portal.Service
// implements it.
type Catalog interface {
	AddSpot(ctx context.Context, name, description string) (portal.SpotView, error)
	UpdateSpot(ctx context.Context, name string, newName, newDescription *string) (portal.SpotView, error)
	RemoveSpot(ctx context.Context, name string) error
	GetSpot(ctx context.Context, name string) (portal.SpotView, error)
	ListSpots(ctx context.Context) []portal.SpotView

	AddPath(ctx context.Context, from, to string, distance, duration int64) error
	UpdatePath(ctx context.Context, from, to string, distance, duration *int64) error
	RemovePath(ctx context.Context, from, to string) error
	ListPaths(ctx context.Context) []portal.PathView

	ShortestPath(ctx context.Context, from, to, metric string) (portal.RouteView, error)
	AllPaths(ctx context.Context, from, to string, limit int) ([]portal.WalkView, error)
	Plan(ctx context.Context, from, to string, mustPass []string, metric string) (portal.PlanView, error)
	Reachable(ctx context.Context, name string, maxDepth int) (portal.ReachView, error)
	Backbone(ctx context.Context, metric, method string) (portal.BackboneView, error)
	Trails(ctx context.Context, from, to string) (portal.TrailsView, error)
	Chart(ctx context.Context, metric string) (portal.ChartView, error)

	Stats(ctx context.Context) portal.StatsView
	Seed(ctx context.Context, seed int64) error
	ImportGrid(ctx context.Context, req portal.GridRequest) (portal.ImportView, error)
}

var _ Catalog = (*portal.Service)(nil)

// Options configures the router.
type Options struct {
	Logger  *zap.Logger
	Metrics *observability.Collector
	Tracer  *observability.TracerProvider

	// MetricsPath mounts the prometheus handler; empty disables it.
	MetricsPath string

	// CORSOrigins lists allowed origins. Empty allows any origin.
	CORSOrigins []string
}

// Router wires HTTP routes to a Catalog.
type Router struct {
	catalog  Catalog
	logger   *zap.Logger
	metrics  *observability.Collector
	tracer   *observability.TracerProvider
	validate *requestValidator
	opts     Options
}

// NewRouter creates a router instance. Missing observability dependencies
// fall back to no-op implementations.
func NewRouter(catalog Catalog, opts Options) *Router {
	rt := &Router{
		catalog:  catalog,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		tracer:   opts.Tracer,
		validate: newRequestValidator(),
		opts:     opts,
	}
	if rt.logger == nil {
		rt.logger = zap.NewNop()
	}
	if rt.metrics == nil {
		rt.metrics = observability.NewCollector("")
	}
	if rt.tracer == nil {
		rt.tracer = observability.NoopTracing()
	}

	return rt
}

// Handler configures all routes and middleware.
func (rt *Router) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(requestID)
	router.Use(chimiddleware.RealIP)
	router.Use(recoverer(rt.logger))
	router.Use(requestLogger(rt.logger))
	router.Use(instrument(rt.metrics))
	router.Use(tracing(rt.tracer))

	origins := rt.opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", headerRequestID},
		ExposedHeaders: []string{headerRequestID},
		MaxAge:         300,
	}))

	router.Get("/health", rt.health)
	if rt.opts.MetricsPath != "" {
		router.Method(http.MethodGet, rt.opts.MetricsPath, rt.metrics.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/spots", func(r chi.Router) {
			r.Get("/", rt.listSpots)
			r.Post("/", rt.createSpot)
			r.Get("/{name}", rt.getSpot)
			r.Patch("/{name}", rt.updateSpot)
			r.Delete("/{name}", rt.deleteSpot)
			r.Get("/{name}/reachable", rt.reachable)
		})

		r.Route("/paths", func(r chi.Router) {
			r.Get("/", rt.listPaths)
			r.Post("/", rt.createPath)
			r.Patch("/", rt.updatePath)
			r.Delete("/", rt.deletePath)
		})

		r.Route("/routes", func(r chi.Router) {
			r.Get("/shortest", rt.shortestPath)
			r.Get("/all", rt.allPaths)
			r.Post("/plan", rt.plan)
			r.Get("/backbone", rt.backbone)
			r.Get("/trails", rt.trails)
			r.Get("/chart", rt.chart)
		})

		r.Get("/stats", rt.stats)
		r.Post("/seed", rt.seed)
		r.Post("/import/grid", rt.importGrid)
	})

	return router
}

func (rt *Router) health(w http.ResponseWriter, r *http.Request) {
	st := rt.catalog.Stats(r.Context())
	rt.respondJSON(w, http.StatusOK, map[string]any{
		"status":   "healthy",
		"revision": st.Revision,
	})
}
