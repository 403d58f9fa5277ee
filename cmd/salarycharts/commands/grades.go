package commands

import (
	"github.com/spf13/cobra"

	"github.com/Techinterview-space/web-api-sub003/internal/export"
)

// grades --samples <csv> --value <v> [--max <v>]: band the samples by grade and
// report which grades a salary (or salary range) belongs to.
func gradesCmd(a *app) *cobra.Command {
	var (
		samplesPath     string
		value, maxValue float64
	)

	cmd := &cobra.Command{
		Use:   "grades",
		Short: "Find the grades whose salary band contains a value or range",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.readSamples(samplesPath)
			if err != nil {
				return err
			}

			ranges := a.charts.GradeRanges(records)

			var upper *float64
			if cmd.Flags().Changed("max") {
				upper = &maxValue
			}
			matches := ranges.InWhatRangeValueIs(value, upper)

			a.log.Debug().
				Int("samples", len(records)).
				Int("matches", len(matches)).
				Msg("Classified salary")
			return a.write(cmd, export.Grades(ranges.Bands(), matches))
		},
	}

	cmd.Flags().StringVar(&samplesPath, "samples", "", "CSV file with value,grade,location,timestamp rows")
	cmd.Flags().Float64Var(&value, "value", 0, "salary, or the lower end of a salary range")
	cmd.Flags().Float64Var(&maxValue, "max", 0, "upper end of a salary range")
	_ = cmd.MarkFlagRequired("samples")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}
