package main

import (
	"github.com/spf13/cobra"

	"github.com/sartorproj/tempstats/internal/readings"
	"github.com/sartorproj/tempstats/tempseries"
)

// inputFlags selects where readings come from.
type inputFlags struct {
	file   string
	column string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "CSV file with readings")
	cmd.Flags().StringVar(&f.column, "column", "", "CSV column holding temperatures (overrides input.value_column)")
}

// load reads the CSV file (if any) followed by the argument readings.
func (f *inputFlags) load(rt *runtime, args []string) ([]float64, error) {
	temps := []float64{}

	if f.file != "" {
		opts := readings.OptionsFromConfig(rt.cfg.Input)
		if f.column != "" {
			opts.ValueColumn = f.column
		}
		fromFile, err := readings.Load(f.file, opts)
		if err != nil {
			return nil, err
		}
		rt.logger.Debug("Loaded readings from file", "file", f.file, "count", len(fromFile))
		temps = append(temps, fromFile...)
	}

	fromArgs, err := readings.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	return append(temps, fromArgs...), nil
}

// series builds a validated series from the selected input.
func (f *inputFlags) series(rt *runtime, args []string) (*tempseries.Analysis, error) {
	temps, err := f.load(rt, args)
	if err != nil {
		return nil, err
	}
	return tempseries.NewFromTemps(temps)
}
