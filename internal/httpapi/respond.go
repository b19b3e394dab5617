package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/katalvlaran/tourgraph/bfs"
	"github.com/katalvlaran/tourgraph/builder"
	"github.com/katalvlaran/tourgraph/core"
	"github.com/katalvlaran/tourgraph/flow"
	"github.com/katalvlaran/tourgraph/gridgraph"
	"github.com/katalvlaran/tourgraph/prim_kruskal"
	"github.com/katalvlaran/tourgraph/store"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error     string       `json:"error"`
	Details   []fieldError `json:"details,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
}

// statusFor maps a service error to an HTTP status.
func statusFor(err error) int {
	var verr validationErrors
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrInvalidSpot),
		errors.Is(err, core.ErrNameNotFound),
		errors.Is(err, core.ErrPathNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrDuplicateName),
		errors.Is(err, prim_kruskal.ErrDisconnected):
		return http.StatusConflict
	case errors.Is(err, core.ErrInvalidMetric),
		errors.Is(err, core.ErrBadWeight),
		errors.Is(err, core.ErrLoopNotAllowed),
		errors.Is(err, core.ErrEmptyName),
		errors.Is(err, bfs.ErrOptionViolation),
		errors.Is(err, builder.ErrBadRange),
		errors.Is(err, prim_kruskal.ErrUnknownMethod),
		errors.Is(err, flow.ErrSameEndpoints),
		errors.Is(err, gridgraph.ErrBadOption),
		errors.Is(err, gridgraph.ErrEmptyGrid),
		errors.Is(err, gridgraph.ErrNonRectangular):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (rt *Router) respondJSON(w http.ResponseWriter, status int, data any) {
	writeJSON(w, rt.logger, status, data)
}

// respondError writes err with its mapped status. Internal failures are
// logged and their text is not leaked to the client.
func (rt *Router) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	body := errorBody{Error: err.Error(), RequestID: RequestIDFrom(r.Context())}

	var verr validationErrors
	if errors.As(err, &verr) {
		body.Error = "validation failed"
		body.Details = verr
	}
	if status >= http.StatusInternalServerError {
		rt.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.String("requestID", body.RequestID),
			zap.Error(err),
		)
		if status == http.StatusInternalServerError {
			body.Error = "internal error"
		}
	}

	rt.respondJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
