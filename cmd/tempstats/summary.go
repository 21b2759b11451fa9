package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSummaryCommand(rt *runtime) *cobra.Command {
	var input inputFlags

	cmd := &cobra.Command{
		Use:   "summary [readings...]",
		Short: "Print average, deviation, min and max",
		Example: `  tempstats summary 3,-5,1,5
  tempstats summary --file readings.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := input.series(rt, args)
			if err != nil {
				return err
			}
			summary, err := series.SummaryStatistics()
			if err != nil {
				return err
			}
			rt.logger.Debug("Summary computed", "size", series.Len())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), summary)
			return err
		},
	}

	input.register(cmd)
	return cmd
}
