package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/2beens/gymplan/internal/gymplan/address"
	"github.com/2beens/gymplan/internal/gymplan/curriculum"

	"github.com/spf13/cobra"
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Print the rep range and rest period of every curriculum workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "WORKOUT\tPHASE\tTYPE\tREPS\tREST\tTABLE")
		for week := address.MinWeek; week <= address.MaxWeek; week++ {
			for day := address.MinDay; day <= address.MaxDay; day++ {
				w, err := curriculum.Describe(week, day)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%ds\t%s\n",
					curriculum.Position{Week: week, Day: day}, w.Phase, w.Type, w.RepRange, w.RestPeriodSeconds, w.Table)
			}
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(policyCmd)
}
