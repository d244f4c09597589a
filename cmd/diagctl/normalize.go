package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/ZanzyTHEbar/ies-diagnostics/internal/dimensions"
	"github.com/spf13/cobra"
)

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize NAME...",
		Short: "Show the canonical dimension name for each input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "INPUT\tCANONICAL\tRESOLVED")
			for _, name := range args {
				canonical, ok := dimensions.Resolve(name)
				fmt.Fprintf(tw, "%s\t%s\t%t\n", name, canonical, ok)
			}
			return tw.Flush()
		},
	}
}
