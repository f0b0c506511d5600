package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vgapps/usertable"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the application routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := usertable.NewRouteTable(nil)
			if err := table.Validate(); err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPATH\tPROPS")
			for _, rt := range table {
				fmt.Fprintf(tw, "%s\t%s\t%v\n", rt.Name, rt.Path, rt.Props != nil)
			}
			return tw.Flush()
		},
	}
}
