package httpapi

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// CreateSpotRequest is the body of POST /api/v1/spots.
type CreateSpotRequest struct {
	Name        string `json:"name" validate:"required,max=64"`
	Description string `json:"description" validate:"max=1024"`
}

// UpdateSpotRequest is the body of PATCH /api/v1/spots/{name}. At least
// one field must be present.
type UpdateSpotRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=64"`
	Description *string `json:"description" validate:"omitempty,max=1024"`
}

// listSpots handles GET /spots
func (rt *Router) listSpots(w http.ResponseWriter, r *http.Request) {
	rt.respondJSON(w, http.StatusOK, rt.catalog.ListSpots(r.Context()))
}

// createSpot handles POST /spots
func (rt *Router) createSpot(w http.ResponseWriter, r *http.Request) {
	var req CreateSpotRequest
	if err := rt.validate.decode(r, &req); err != nil {
		rt.respondError(w, r, err)
		return
	}

	view, err := rt.catalog.AddSpot(r.Context(), req.Name, req.Description)
	if err != nil {
		rt.respondError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/spots/"+url.PathEscape(view.Name))
	rt.respondJSON(w, http.StatusCreated, view)
}

// getSpot handles GET /spots/{name}
func (rt *Router) getSpot(w http.ResponseWriter, r *http.Request) {
	view, err := rt.catalog.GetSpot(r.Context(), spotName(r))
	if err != nil {
		rt.respondError(w, r, err)
		return
	}
	rt.respondJSON(w, http.StatusOK, view)
}

// updateSpot handles PATCH /spots/{name}
func (rt *Router) updateSpot(w http.ResponseWriter, r *http.Request) {
	var req UpdateSpotRequest
	if err := rt.validate.decode(r, &req); err != nil {
		rt.respondError(w, r, err)
		return
	}
	if req.Name == nil && req.Description == nil {
		rt.respondError(w, r, validationErrors{{Field: "body", Message: "name or description is required"}})
		return
	}

	view, err := rt.catalog.UpdateSpot(r.Context(), spotName(r), req.Name, req.Description)
	if err != nil {
		rt.respondError(w, r, err)
		return
	}
	rt.respondJSON(w, http.StatusOK, view)
}

// deleteSpot handles DELETE /spots/{name}
func (rt *Router) deleteSpot(w http.ResponseWriter, r *http.Request) {
	if err := rt.catalog.RemoveSpot(r.Context(), spotName(r)); err != nil {
		rt.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// reachable handles GET /spots/{name}/reachable?max_depth=
func (rt *Router) reachable(w http.ResponseWriter, r *http.Request) {
	depth, err := intParam(r, "max_depth", 0)
	if err != nil {
		rt.respondError(w, r, err)
		return
	}

	view, err := rt.catalog.Reachable(r.Context(), spotName(r), depth)
	if err != nil {
		rt.respondError(w, r, err)
		return
	}
	rt.respondJSON(w, http.StatusOK, view)
}

// spotName returns the decoded {name} URL parameter. chi matches on
// RawPath when the request has one, so only then is the value still escaped.
func spotName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return raw
	}
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}

	return raw
}

// intParam parses an optional integer query parameter.
func intParam(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validationErrors{{Field: key, Message: "must be an integer"}}
	}

	return n, nil
}
