package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourgraph/core"
	"github.com/katalvlaran/tourgraph/internal/portal"
	"github.com/katalvlaran/tourgraph/prim_kruskal"
)

func newRouteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find routes between spots",
	}

	var metric string
	shortestCmd := &cobra.Command{
		Use:   "shortest FROM TO",
		Short: "Cheapest route by distance or duration",
		Args:  exactArgs(2, "FROM TO"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(svc *portal.Service) error {
				view, err := svc.ShortestPath(cmd.Context(), args[0], args[1], metric)
				if err != nil {
					return err
				}
				return a.out.Route(view)
			})
		},
	}
	shortestCmd.Flags().StringVarP(&metric, "metric", "m", core.MetricDistance.String(), "distance|duration")

	var limit int
	allCmd := &cobra.Command{
		Use:   "all FROM TO",
		Short: "Every simple route between two spots",
		Args:  exactArgs(2, "FROM TO"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(svc *portal.Service) error {
				walks, err := svc.AllPaths(cmd.Context(), args[0], args[1], limit)
				if err != nil {
					return err
				}
				return a.out.Walks(walks)
			})
		},
	}
	allCmd.Flags().IntVar(&limit, "limit", 0, "stop after this many routes (0 = all)")

	var via []string
	var planMetric string
	planCmd := &cobra.Command{
		Use:   "plan FROM TO",
		Short: "Greedy route through must-pass spots",
		Args:  exactArgs(2, "FROM TO"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(svc *portal.Service) error {
				view, err := svc.Plan(cmd.Context(), args[0], args[1], via, planMetric)
				if err != nil {
					return err
				}
				return a.out.Plan(view)
			})
		},
	}
	planCmd.Flags().StringSliceVar(&via, "via", nil, "must-pass spots, comma separated")
	planCmd.Flags().StringVarP(&planMetric, "metric", "m", core.MetricDistance.String(), "distance|duration")

	var maxDepth int
	reachCmd := &cobra.Command{
		Use:   "reachable NAME",
		Short: "Spots reachable from NAME with their stop counts",
		Args:  exactArgs(1, "NAME"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(svc *portal.Service) error {
				view, err := svc.Reachable(cmd.Context(), args[0], maxDepth)
				if err != nil {
					return err
				}
				return a.out.Reach(view)
			})
		},
	}
	reachCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum stops (0 = unlimited)")

	var backboneMetric, method string
	backboneCmd := &cobra.Command{
		Use:   "backbone",
		Short: "Cheapest set of paths keeping every spot connected",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withService(cmd.Context(), func(svc *portal.Service) error {
				view, err := svc.Backbone(cmd.Context(), backboneMetric, method)
				if err != nil {
					return err
				}
				return a.out.Backbone(view)
			})
		},
	}
	backboneCmd.Flags().StringVarP(&backboneMetric, "metric", "m", core.MetricDistance.String(), "distance|duration")
	backboneCmd.Flags().StringVar(&method, "method", prim_kruskal.MethodKruskal, "kruskal|prim")

	trailsCmd := &cobra.Command{
		Use:   "trails FROM TO",
		Short: "Count independent trails and list the critical paths",
		Args:  exactArgs(2, "FROM TO"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(svc *portal.Service) error {
				view, err := svc.Trails(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return a.out.Trails(view)
			})
		},
	}

	var chartMetric string
	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Shortest distance (or duration) between every pair of spots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withService(cmd.Context(), func(svc *portal.Service) error {
				view, err := svc.Chart(cmd.Context(), chartMetric)
				if err != nil {
					return err
				}
				return a.out.Chart(view)
			})
		},
	}
	chartCmd.Flags().StringVarP(&chartMetric, "metric", "m", core.MetricDistance.String(), "distance|duration")

	cmd.AddCommand(shortestCmd, allCmd, planCmd, reachCmd, backboneCmd, trailsCmd, chartCmd)

	return cmd
}
