package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourgraph/internal/portal"
)

func newPathCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "path",
		Aliases: []string{"paths"},
		Short:   "Manage paths between spots",
	}

	var distance, duration int64
	addCmd := &cobra.Command{
		Use:   "add FROM TO",
		Short: "Connect two spots",
		Args:  exactArgs(2, "FROM TO"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(svc *portal.Service) error {
				if err := svc.AddPath(cmd.Context(), args[0], args[1], distance, duration); err != nil {
					return err
				}
				return a.succeed("connected %s and %s (%d m, %d min)", args[0], args[1], distance, duration)
			})
		},
	}
	addCmd.Flags().Int64Var(&distance, "distance", 0, "length in meters")
	addCmd.Flags().Int64Var(&duration, "duration", 0, "walking time in minutes")
	_ = addCmd.MarkFlagRequired("distance")
	_ = addCmd.MarkFlagRequired("duration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every path once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withService(cmd.Context(), func(svc *portal.Service) error {
				return a.out.Paths(svc.ListPaths(cmd.Context()))
			})
		},
	}

	var newDistance, newDuration int64
	updateCmd := &cobra.Command{
		Use:   "update FROM TO",
		Short: "Change the weights of a path",
		Args:  exactArgs(2, "FROM TO"),
		RunE: func(cmd *cobra.Command, args []string) error {
			var distPtr, durPtr *int64
			if cmd.Flags().Changed("distance") {
				distPtr = &newDistance
			}
			if cmd.Flags().Changed("duration") {
				durPtr = &newDuration
			}
			return a.withService(cmd.Context(), func(svc *portal.Service) error {
				if err := svc.UpdatePath(cmd.Context(), args[0], args[1], distPtr, durPtr); err != nil {
					return err
				}
				return a.succeed("updated path %s - %s", args[0], args[1])
			})
		},
	}
	updateCmd.Flags().Int64Var(&newDistance, "distance", 0, "new length in meters")
	updateCmd.Flags().Int64Var(&newDuration, "duration", 0, "new walking time in minutes")
	updateCmd.MarkFlagsOneRequired("distance", "duration")

	rmCmd := &cobra.Command{
		Use:     "rm FROM TO",
		Aliases: []string{"delete"},
		Short:   "Remove every path between two spots",
		Args:    exactArgs(2, "FROM TO"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(svc *portal.Service) error {
				if err := svc.RemovePath(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				return a.succeed("removed paths between %s and %s", args[0], args[1])
			})
		},
	}

	cmd.AddCommand(addCmd, listCmd, updateCmd, rmCmd)

	return cmd
}
