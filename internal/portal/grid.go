package portal

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/tourgraph/core"
	"github.com/katalvlaran/tourgraph/gridgraph"
)

// ImportGrid replaces the whole catalog with the spots and paths of a
// terrain map. Cells are named R<row>C<col>.
func (s *Service) ImportGrid(ctx context.Context, req GridRequest) (ImportView, error) {
	opts, err := gridOptions(req)
	if err != nil {
		return ImportView{}, err
	}
	gg, err := gridgraph.NewGridGraph(req.Cells, opts...)
	if err != nil {
		return ImportView{}, err
	}

	var view ImportView
	attrs := []attribute.KeyValue{
		attribute.Int("grid.width", gg.Width),
		attribute.Int("grid.height", gg.Height),
	}
	err = s.mutate(ctx, "import_grid", attrs, func(g *core.Graph) error {
		g.Clear()
		if _, err := gg.Populate(g); err != nil {
			return err
		}
		view = ImportView{
			Spots:   g.NodeCount(),
			Paths:   g.EdgeCount(),
			Islands: len(gg.ConnectedComponents()),
		}

		return nil
	})

	return view, err
}

func gridOptions(req GridRequest) ([]gridgraph.Option, error) {
	var opts []gridgraph.Option
	if req.Connectivity != 0 {
		c, err := gridgraph.ParseConnectivity(req.Connectivity)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gridgraph.WithConnectivity(c))
	}
	if req.Threshold != 0 {
		opts = append(opts, gridgraph.WithLandThreshold(req.Threshold))
	}
	if req.CellSize != 0 {
		opts = append(opts, gridgraph.WithCellSize(req.CellSize))
	}
	if req.MinutesPerUnit != 0 {
		opts = append(opts, gridgraph.WithMinutesPerUnit(req.MinutesPerUnit))
	}

	return opts, nil
}
