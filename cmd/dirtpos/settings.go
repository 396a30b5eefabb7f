package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change store settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Printf("tax rate: %g\n", a.store.Settings().TaxRate)
			return nil
		},
	}

	tax := &cobra.Command{
		Use:   "tax RATE",
		Short: "Set the tax rate as a fraction, e.g. 0.08 for 8%",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid rate %q", args[0])
			}
			a.store.SetTaxRate(rate)
			return nil
		},
	}

	cmd.AddCommand(show, tax)
	return cmd
}
