package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/tempstats/internal/report"
)

type analyzeFlags struct {
	target      float64
	lessThan    float64
	greaterThan float64
	inRange     []float64
	format      string
}

func newAnalyzeCommand(rt *runtime) *cobra.Command {
	var (
		input inputFlags
		flags analyzeFlags
	)

	cmd := &cobra.Command{
		Use:   "analyze [readings...]",
		Short: "Print a full report of the series",
		Example: `  tempstats analyze 3,-5,1,5 --target 6 --range 0,4
  tempstats analyze -f readings.csv --less-than 0 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := flags.query(cmd)
			if err != nil {
				return err
			}
			series, err := input.series(rt, args)
			if err != nil {
				return err
			}
			r, err := report.Build(series, q)
			if err != nil {
				return err
			}

			switch flags.format {
			case "json":
				return report.RenderJSON(cmd.OutOrStdout(), r)
			case "table":
				return report.RenderTable(cmd.OutOrStdout(), r)
			default:
				return fmt.Errorf("unknown format %q (want table or json)", flags.format)
			}
		},
	}

	input.register(cmd)
	cmd.Flags().Float64Var(&flags.target, "target", 0, "report the reading closest to this value")
	cmd.Flags().Float64Var(&flags.lessThan, "less-than", 0, "list readings strictly below this value")
	cmd.Flags().Float64Var(&flags.greaterThan, "greater-than", 0, "list readings strictly above this value")
	cmd.Flags().Float64SliceVar(&flags.inRange, "range", nil, "list readings strictly between LOWER,UPPER")
	cmd.Flags().StringVar(&flags.format, "format", "table", "output format: table or json")

	return cmd
}

// query includes only the lookups whose flags were set.
func (f *analyzeFlags) query(cmd *cobra.Command) (report.Query, error) {
	var q report.Query
	if cmd.Flags().Changed("target") {
		q.Target = &f.target
	}
	if cmd.Flags().Changed("less-than") {
		q.LessThan = &f.lessThan
	}
	if cmd.Flags().Changed("greater-than") {
		q.GreaterThan = &f.greaterThan
	}
	if cmd.Flags().Changed("range") {
		if len(f.inRange) != 2 {
			return q, fmt.Errorf("--range needs exactly two values, got %d", len(f.inRange))
		}
		q.Range = &report.Bounds{Lower: f.inRange[0], Upper: f.inRange[1]}
	}
	return q, nil
}
