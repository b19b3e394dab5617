package httpapi

import "net/http"

// CreatePathRequest is the body of POST /api/v1/paths.
type CreatePathRequest struct {
	From     string `json:"from" validate:"required"`
	To       string `json:"to" validate:"required"`
	Distance int64  `json:"distance" validate:"gt=0"`
	Duration int64  `json:"duration" validate:"gt=0"`
}

// UpdatePathRequest is the body of PATCH /api/v1/paths.
type UpdatePathRequest struct {
	From     string `json:"from" validate:"required"`
	To       string `json:"to" validate:"required"`
	Distance *int64 `json:"distance" validate:"omitempty,gt=0"`
	Duration *int64 `json:"duration" validate:"omitempty,gt=0"`
}

// pairQuery carries the endpoints of DELETE /api/v1/paths.
type pairQuery struct {
	From string `query:"from" validate:"required"`
	To   string `query:"to" validate:"required"`
}

// listPaths handles GET /paths
func (rt *Router) listPaths(w http.ResponseWriter, r *http.Request) {
	rt.respondJSON(w, http.StatusOK, rt.catalog.ListPaths(r.Context()))
}

// createPath handles POST /paths
func (rt *Router) createPath(w http.ResponseWriter, r *http.Request) {
	var req CreatePathRequest
	if err := rt.validate.decode(r, &req); err != nil {
		rt.respondError(w, r, err)
		return
	}

	if err := rt.catalog.AddPath(r.Context(), req.From, req.To, req.Distance, req.Duration); err != nil {
		rt.respondError(w, r, err)
		return
	}
	rt.respondJSON(w, http.StatusCreated, req)
}

// updatePath handles PATCH /paths
func (rt *Router) updatePath(w http.ResponseWriter, r *http.Request) {
	var req UpdatePathRequest
	if err := rt.validate.decode(r, &req); err != nil {
		rt.respondError(w, r, err)
		return
	}
	if req.Distance == nil && req.Duration == nil {
		rt.respondError(w, r, validationErrors{{Field: "body", Message: "distance or duration is required"}})
		return
	}

	if err := rt.catalog.UpdatePath(r.Context(), req.From, req.To, req.Distance, req.Duration); err != nil {
		rt.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deletePath handles DELETE /paths?from=&to=
func (rt *Router) deletePath(w http.ResponseWriter, r *http.Request) {
	q := pairQuery{From: r.URL.Query().Get("from"), To: r.URL.Query().Get("to")}
	if err := rt.validate.Struct(q); err != nil {
		rt.respondError(w, r, err)
		return
	}

	if err := rt.catalog.RemovePath(r.Context(), q.From, q.To); err != nil {
		rt.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
