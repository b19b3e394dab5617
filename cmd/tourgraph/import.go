package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tourgraph/internal/portal"
)

func newImportCmd(a *app) *cobra.Command {
	var conn int
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the graph with a terrain grid",
		Long: "Import reads a YAML (or JSON) terrain map and rebuilds the catalog from it.\n" +
			"Each walkable cell becomes a spot named R<row>C<col>; neighbouring cells are\n" +
			"joined by paths.\n\n" +
			"  cells:\n" +
			"    - [1, 1, 0]\n" +
			"    - [0, 2, 1]\n" +
			"  connectivity: 8\n" +
			"  cell_size: 100\n",
		Args: exactArgs(1, "FILE"),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readGrid(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("connectivity") {
				req.Connectivity = conn
			}

			return a.withService(cmd.Context(), func(svc *portal.Service) error {
				view, err := svc.ImportGrid(cmd.Context(), req)
				if err != nil {
					return err
				}
				return a.out.Import(view)
			})
		},
	}
	cmd.Flags().IntVar(&conn, "connectivity", 4, "neighbour connectivity: 4 or 8 (overrides the file)")

	return cmd
}

func readGrid(path string) (portal.GridRequest, error) {
	var req portal.GridRequest
	raw, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("read grid: %w", err)
	}
	if err = yaml.Unmarshal(raw, &req); err != nil {
		return req, fmt.Errorf("parse grid %s: %w", path, err)
	}

	return req, nil
}
