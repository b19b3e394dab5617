package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourgraph/internal/portal"
)

func newSpotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "spot",
		Aliases: []string{"spots"},
		Short:   "Manage spots",
	}

	var desc string
	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a spot",
		Args:  exactArgs(1, "NAME"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(svc *portal.Service) error {
				view, err := svc.AddSpot(cmd.Context(), args[0], desc)
				if err != nil {
					return err
				}
				return a.out.Spot(view)
			})
		},
	}
	addCmd.Flags().StringVarP(&desc, "desc", "d", "", "description")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all spots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withService(cmd.Context(), func(svc *portal.Service) error {
				return a.out.Spots(svc.ListSpots(cmd.Context()))
			})
		},
	}

	showCmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show a spot and its walkable neighbours",
		Args:  exactArgs(1, "NAME"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(svc *portal.Service) error {
				view, err := svc.GetSpot(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.out.Spot(view)
			})
		},
	}

	var newName, newDesc string
	updateCmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Rename or re-describe a spot",
		Args:  exactArgs(1, "NAME"),
		RunE: func(cmd *cobra.Command, args []string) error {
			var namePtr, descPtr *string
			if cmd.Flags().Changed("name") {
				namePtr = &newName
			}
			if cmd.Flags().Changed("desc") {
				descPtr = &newDesc
			}
			return a.withService(cmd.Context(), func(svc *portal.Service) error {
				view, err := svc.UpdateSpot(cmd.Context(), args[0], namePtr, descPtr)
				if err != nil {
					return err
				}
				return a.out.Spot(view)
			})
		},
	}
	updateCmd.Flags().StringVar(&newName, "name", "", "new name")
	updateCmd.Flags().StringVarP(&newDesc, "desc", "d", "", "new description")
	updateCmd.MarkFlagsOneRequired("name", "desc")

	rmCmd := &cobra.Command{
		Use:     "rm NAME",
		Aliases: []string{"delete"},
		Short:   "Delete a spot (its paths become unwalkable)",
		Args:    exactArgs(1, "NAME"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(svc *portal.Service) error {
				if err := svc.RemoveSpot(cmd.Context(), args[0]); err != nil {
					return err
				}
				return a.succeed("deleted spot %q", args[0])
			})
		},
	}

	cmd.AddCommand(addCmd, listCmd, showCmd, updateCmd, rmCmd)

	return cmd
}
