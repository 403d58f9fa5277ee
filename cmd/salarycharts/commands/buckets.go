package commands

import (
	"github.com/spf13/cobra"

	"github.com/Techinterview-space/web-api-sub003/internal/export"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/splitters"
)

// buckets --from <time> --to <time>: split a date range into chart buckets.
func bucketsCmd(a *app) *cobra.Command {
	var (
		from, to        string
		intervalMinutes int
		rounded, weekly bool
	)

	cmd := &cobra.Command{
		Use:   "buckets",
		Short: "Split a date range into contiguous buckets",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := a.parseTime("from", from)
			if err != nil {
				return err
			}
			end, err := a.parseTime("to", to)
			if err != nil {
				return err
			}
			if intervalMinutes == 0 {
				intervalMinutes = a.cfg.IntervalMinutes
			}

			var splitter splitters.RangeSplitter
			switch {
			case weekly:
				s, err := splitters.NewWeekSplitter(start, end)
				if err != nil {
					return err
				}
				splitter = s
			case rounded:
				s, err := splitters.NewDateTimeRoundedRangeSplitter(start, end, intervalMinutes)
				if err != nil {
					return err
				}
				splitter = s
			default:
				s, err := splitters.NewDateTimeRangeSplitter(start, end, intervalMinutes)
				if err != nil {
					return err
				}
				splitter = s
			}

			buckets := splitter.ToList()
			a.log.Debug().Int("buckets", len(buckets)).Msg("Split date range")
			return a.write(cmd, export.Buckets(buckets))
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "range start (RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD')")
	cmd.Flags().StringVar(&to, "to", "", "range end")
	cmd.Flags().IntVar(&intervalMinutes, "interval", 0, "bucket width in minutes (default from SALARY_CHARTS_INTERVAL_MINUTES)")
	cmd.Flags().BoolVar(&rounded, "rounded", false, "align bucket boundaries to the clock")
	cmd.Flags().BoolVar(&weekly, "week", false, "7-day buckets anchored at --from")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	cmd.MarkFlagsMutuallyExclusive("rounded", "week")
	return cmd
}
