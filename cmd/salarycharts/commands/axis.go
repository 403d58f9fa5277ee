package commands

import (
	"github.com/spf13/cobra"

	"github.com/Techinterview-space/web-api-sub003/internal/export"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/splitters"
)

// axis --min <v> --max <v> --step <v>: split a salary axis into rounded ranges.
func axisCmd(a *app) *cobra.Command {
	var minValue, maxValue, step float64

	cmd := &cobra.Command{
		Use:   "axis",
		Short: "Split a value axis into step-aligned ranges",
		RunE: func(cmd *cobra.Command, args []string) error {
			splitter, err := splitters.NewRoundedValuesByRangesSplitter(minValue, maxValue, step)
			if err != nil {
				return err
			}

			a.log.Debug().
				Float64("rounded_min", splitter.RoundedMin()).
				Float64("rounded_max", splitter.RoundedMax()).
				Int("buckets", splitter.Count()).
				Msg("Split value axis")
			return a.write(cmd, export.ValueBuckets(splitter.ToList()))
		},
	}

	cmd.Flags().Float64Var(&minValue, "min", 0, "smallest value on the axis")
	cmd.Flags().Float64Var(&maxValue, "max", 0, "largest value on the axis")
	cmd.Flags().Float64Var(&step, "step", 0, "range width")
	_ = cmd.MarkFlagRequired("max")
	_ = cmd.MarkFlagRequired("step")
	return cmd
}
