package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourgraph/builder"
	"github.com/katalvlaran/tourgraph/internal/portal"
)

func newSeedCmd(a *app) *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the graph with a random demo area",
		Long: "Seed clears every spot and path, then generates the demo area:\n" +
			"8 spots and 15 distinct paths with random weights, reproducible per --seed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withService(cmd.Context(), func(svc *portal.Service) error {
				if err := svc.Seed(cmd.Context(), seed); err != nil {
					return err
				}
				return a.out.Stats(svc.Stats(cmd.Context()))
			})
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", builder.DefaultSeed, "random seed")

	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withService(cmd.Context(), func(svc *portal.Service) error {
				return a.out.Stats(svc.Stats(cmd.Context()))
			})
		},
	}
}
