package httpapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourgraph/internal/httpapi"
	"github.com/katalvlaran/tourgraph/internal/observability"
	"github.com/katalvlaran/tourgraph/internal/portal"
	"github.com/katalvlaran/tourgraph/store"
)

type apiClient struct {
	t *testing.T
	h http.Handler
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	st := store.NewJSONFile(filepath.Join(t.TempDir(), "data.json"))
	metrics := observability.NewCollector("")
	svc, err := portal.New(context.Background(), st, portal.WithMetrics(metrics))
	require.NoError(t, err)

	rt := httpapi.NewRouter(svc, httpapi.Options{Metrics: metrics, MetricsPath: "/metrics"})

	return &apiClient{t: t, h: rt.Handler()}
}

func (c *apiClient) do(method, target, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	c.h.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

type errorResponse struct {
	Error   string `json:"error"`
	Details []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"details"`
	RequestID string `json:"request_id"`
}

// seedTriangle creates Gate, Lake, Peak and an isolated Tower through the API.
func (c *apiClient) seedTriangle() {
	c.t.Helper()
	for _, n := range []string{"Gate", "Lake", "Peak", "Tower"} {
		rec := c.do(http.MethodPost, "/api/v1/spots", `{"name":"`+n+`","description":"`+n+` info"}`)
		require.Equal(c.t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	for _, body := range []string{
		`{"from":"Gate","to":"Lake","distance":10,"duration":5}`,
		`{"from":"Lake","to":"Peak","distance":15,"duration":7}`,
		`{"from":"Gate","to":"Peak","distance":30,"duration":10}`,
	} {
		rec := c.do(http.MethodPost, "/api/v1/paths", body)
		require.Equal(c.t, http.StatusCreated, rec.Code, rec.Body.String())
	}
}

func TestHealth_RequestID(t *testing.T) {
	api := newAPI(t)

	rec := api.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	api.h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestSpots(t *testing.T) {
	api := newAPI(t)
	api.seedTriangle()

	rec := api.do(http.MethodPost, "/api/v1/spots", `{"name":"Gate"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = api.do(http.MethodPost, "/api/v1/spots", `{"description":"nameless"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[errorResponse](t, rec)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "name", body.Details[0].Field)
	assert.NotEmpty(t, body.RequestID)

	rec = api.do(http.MethodPost, "/api/v1/spots", `{"name":"X","colour":"red"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "unknown fields are rejected")

	rec = api.do(http.MethodGet, "/api/v1/spots/Gate", "")
	require.Equal(t, http.StatusOK, rec.Code)
	gate := decode[portal.SpotView](t, rec)
	assert.Equal(t, "Gate info", gate.Description)
	assert.Len(t, gate.Neighbors, 2)

	rec = api.do(http.MethodPatch, "/api/v1/spots/Gate", `{"name":"North Gate"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = api.do(http.MethodGet, "/api/v1/spots/North%20Gate", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodPatch, "/api/v1/spots/Lake", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodDelete, "/api/v1/spots/Lake", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = api.do(http.MethodGet, "/api/v1/spots/Lake", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/spots", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]portal.SpotView](t, rec), 3)
}

func TestPaths(t *testing.T) {
	api := newAPI(t)
	api.seedTriangle()

	rec := api.do(http.MethodPost, "/api/v1/paths", `{"from":"Gate","to":"Tower","distance":0,"duration":3}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "distance", decode[errorResponse](t, rec).Details[0].Field)

	rec = api.do(http.MethodPost, "/api/v1/paths", `{"from":"Gate","to":"Nowhere","distance":1,"duration":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodPost, "/api/v1/paths", `{"from":"Gate","to":"Gate","distance":1,"duration":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPatch, "/api/v1/paths", `{"from":"Gate","to":"Lake","duration":6}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = api.do(http.MethodPatch, "/api/v1/paths", `{"from":"Gate","to":"Tower","duration":6}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodDelete, "/api/v1/paths?from=Gate", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = api.do(http.MethodDelete, "/api/v1/paths?from=Gate&to=Peak", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/paths", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []portal.PathView{
		{From: "Gate", To: "Lake", Distance: 10, Duration: 6},
		{From: "Lake", To: "Peak", Distance: 15, Duration: 7},
	}, decode[[]portal.PathView](t, rec))
}

func TestRoutes(t *testing.T) {
	api := newAPI(t)
	api.seedTriangle()

	rec := api.do(http.MethodGet, "/api/v1/routes/shortest?from=Gate&to=Peak", "")
	require.Equal(t, http.StatusOK, rec.Code)
	route := decode[portal.RouteView](t, rec)
	assert.Equal(t, "distance", route.Metric)
	assert.Equal(t, int64(25), route.Weight)
	assert.Equal(t, []string{"Gate", "Lake", "Peak"}, route.Spots)

	rec = api.do(http.MethodGet, "/api/v1/routes/shortest?from=Gate&to=Tower&metric=duration", "")
	require.Equal(t, http.StatusOK, rec.Code)
	route = decode[portal.RouteView](t, rec)
	assert.False(t, route.Reachable)
	assert.Equal(t, int64(-1), route.Weight)

	rec = api.do(http.MethodGet, "/api/v1/routes/shortest?from=Gate&to=Peak&metric=altitude", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = api.do(http.MethodGet, "/api/v1/routes/shortest?to=Peak", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/routes/all?from=Gate&to=Peak", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]portal.WalkView](t, rec), 2)
	rec = api.do(http.MethodGet, "/api/v1/routes/all?from=Gate&to=Peak&limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]portal.WalkView](t, rec), 1)
	rec = api.do(http.MethodGet, "/api/v1/routes/all?from=Gate&to=Peak&limit=many", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPost, "/api/v1/routes/plan", `{"from":"Lake","to":"Peak","must_pass":["Gate"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	plan := decode[portal.PlanView](t, rec)
	assert.Equal(t, int64(35), plan.Weight)
	assert.Equal(t, []string{"Lake", "Gate", "Lake", "Peak"}, plan.Spots)
	assert.Equal(t, []string{"Gate"}, plan.Order)

	rec = api.do(http.MethodPost, "/api/v1/routes/plan", `{"from":"Lake","to":"Peak","must_pass":["Nowhere"]}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = api.do(http.MethodPost, "/api/v1/routes/plan", `{"from":"Lake","to":"Peak","must_pass":[""]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/spots/Gate/reachable?max_depth=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	reach := decode[portal.ReachView](t, rec)
	assert.Len(t, reach.Spots, 3)
	rec = api.do(http.MethodGet, "/api/v1/spots/Gate/reachable?max_depth=-2", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBackbone(t *testing.T) {
	api := newAPI(t)
	api.seedTriangle()

	rec := api.do(http.MethodGet, "/api/v1/routes/backbone", "")
	assert.Equal(t, http.StatusConflict, rec.Code, "Tower is isolated")

	rec = api.do(http.MethodDelete, "/api/v1/spots/Tower", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/routes/backbone?metric=duration&method=prim", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	view := decode[portal.BackboneView](t, rec)
	assert.Equal(t, int64(12), view.Weight)
	assert.Len(t, view.Paths, 2)

	rec = api.do(http.MethodGet, "/api/v1/routes/backbone?method=boruvka", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSeedAndStats(t *testing.T) {
	api := newAPI(t)

	rec := api.do(http.MethodPost, "/api/v1/seed", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	st := decode[portal.StatsView](t, rec)
	assert.Equal(t, 8, st.Spots)
	assert.Equal(t, 15, st.Paths)

	rec = api.do(http.MethodPost, "/api/v1/seed", `{"seed":42}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 8, decode[portal.StatsView](t, rec).Spots)
}

func TestMetricsEndpoint(t *testing.T) {
	api := newAPI(t)
	api.do(http.MethodGet, "/api/v1/stats", "")

	rec := api.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `tourgraph_http_requests_total{method="GET",route="/api/v1/stats",status="200"} 1`)
}

func TestUnknownRoute(t *testing.T) {
	api := newAPI(t)
	rec := api.do(http.MethodGet, "/api/v2/spots", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestImportGrid(t *testing.T) {
	api := newAPI(t)
	api.seedTriangle()

	for _, body := range []string{
		`{"cells":[]}`,
		`{"cells":[[]]}`,
		`{"cells":[[1]],"connectivity":6}`,
		`{"cells":[[1,1],[1]]}`,
	} {
		rec := api.do(http.MethodPost, "/api/v1/import/grid", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}

	rec := api.do(http.MethodPost, "/api/v1/import/grid", `{"cells":[[1,1],[0,1]],"cell_size":50}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, portal.ImportView{Spots: 3, Paths: 2, Islands: 1}, decode[portal.ImportView](t, rec))

	rec = api.do(http.MethodGet, "/api/v1/routes/shortest?from=R0C0&to=R1C1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, int64(100), decode[portal.RouteView](t, rec).Weight)

	rec = api.do(http.MethodGet, "/api/v1/spots/Gate", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTrails(t *testing.T) {
	api := newAPI(t)
	api.seedTriangle()

	rec := api.do(http.MethodGet, "/api/v1/routes/trails?from=Gate&to=Peak", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	view := decode[portal.TrailsView](t, rec)
	assert.Equal(t, 2, view.Count)
	assert.Len(t, view.Critical, 2)

	rec = api.do(http.MethodGet, "/api/v1/routes/trails?from=Gate&to=Tower", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, decode[portal.TrailsView](t, rec).Count)

	rec = api.do(http.MethodGet, "/api/v1/routes/trails?from=Gate&to=Gate", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = api.do(http.MethodGet, "/api/v1/routes/trails?from=Gate", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChart(t *testing.T) {
	api := newAPI(t)
	api.seedTriangle()

	rec := api.do(http.MethodGet, "/api/v1/routes/chart?metric=duration", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	view := decode[portal.ChartView](t, rec)
	assert.Equal(t, "duration", view.Metric)
	require.Len(t, view.Rows, 4)
	assert.Equal(t, []int64{0, 5, 10, -1}, view.Rows[0])

	rec = api.do(http.MethodGet, "/api/v1/routes/chart?metric=altitude", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSpots_EscapedNames(t *testing.T) {
	api := newAPI(t)
	for _, n := range []string{"AA", "A%41", "North/South"} {
		rec := api.do(http.MethodPost, "/api/v1/spots", `{"name":"`+n+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := api.do(http.MethodGet, "/api/v1/spots/A%2541", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "A%41", decode[portal.SpotView](t, rec).Name)

	rec = api.do(http.MethodGet, "/api/v1/spots/North%2FSouth", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "North/South", decode[portal.SpotView](t, rec).Name)

	rec = api.do(http.MethodDelete, "/api/v1/spots/A%2541", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/spots/AA", "")
	assert.Equal(t, http.StatusOK, rec.Code, "a different spot must not be deleted")
	rec = api.do(http.MethodGet, "/api/v1/spots/A%2541", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
