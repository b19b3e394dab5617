package httpapi

import (
	"net/http"

	"github.com/katalvlaran/tourgraph/internal/portal"
)

// ImportGridRequest is the body of POST /import/grid. Cells holds the
// terrain cost of each cell row by row; values below Threshold are
// impassable.
type ImportGridRequest struct {
	Cells          [][]int `json:"cells" validate:"required,min=1,max=200,dive,min=1,max=200"`
	Connectivity   int     `json:"connectivity" validate:"omitempty,oneof=4 8"`
	Threshold      int     `json:"threshold" validate:"omitempty,min=1"`
	CellSize       int64   `json:"cell_size" validate:"omitempty,min=1"`
	MinutesPerUnit int64   `json:"minutes_per_unit" validate:"omitempty,min=1"`
}

// importGrid handles POST /import/grid. The catalog is replaced.
func (rt *Router) importGrid(w http.ResponseWriter, r *http.Request) {
	var req ImportGridRequest
	if err := rt.validate.decode(r, &req); err != nil {
		rt.respondError(w, r, err)
		return
	}
	if err := rt.validate.Struct(req); err != nil {
		rt.respondError(w, r, err)
		return
	}

	view, err := rt.catalog.ImportGrid(r.Context(), portal.GridRequest{
		Cells:          req.Cells,
		Connectivity:   req.Connectivity,
		Threshold:      req.Threshold,
		CellSize:       req.CellSize,
		MinutesPerUnit: req.MinutesPerUnit,
	})
	if err != nil {
		rt.respondError(w, r, err)
		return
	}
	rt.respondJSON(w, http.StatusCreated, view)
}
