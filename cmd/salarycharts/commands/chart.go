package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Techinterview-space/web-api-sub003/internal/export"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/charts"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/splitters"
)

// chart --samples <csv>: build the week-by-week salary chart.
//
// Without --interval the chart covers at most the last 20 weeks before --to in
// weekly buckets. With --interval the whole [--from, --to] range is split into
// clock-aligned buckets of that width. --summary prints the per-location
// statistics of all samples instead.
func chartCmd(a *app) *cobra.Command {
	var (
		samplesPath     string
		from, to        string
		intervalMinutes int
		includeGrades   bool
		summaryOnly     bool
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Build a cumulative salary chart from CSV samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.readSamples(samplesPath)
			if err != nil {
				return err
			}

			if summaryOnly {
				return a.write(cmd, export.Summary(a.charts.Summarize(records)))
			}

			end := time.Now().In(a.cfg.Location())
			if to != "" {
				if end, err = a.parseTime("to", to); err != nil {
					return err
				}
			}
			start := end.AddDate(0, 0, -charts.HistoryLookbackDays)
			if from != "" {
				if start, err = a.parseTime("from", from); err != nil {
					return err
				}
			}

			var chart *charts.SalariesCountWeekByWeekChart
			if intervalMinutes > 0 {
				splitter, err := splitters.NewDateTimeRoundedRangeSplitter(start, end, intervalMinutes)
				if err != nil {
					return err
				}
				chart = a.charts.BuildChart(records, splitter.ToList(), includeGrades)
			} else {
				chart, err = a.charts.BuildHistoricalChart(records, start, end, includeGrades)
				if err != nil {
					return err
				}
			}

			return a.write(cmd, export.Chart(chart))
		},
	}

	cmd.Flags().StringVar(&samplesPath, "samples", "", "CSV file with value,grade,location,timestamp rows")
	cmd.Flags().StringVar(&from, "from", "", "chart start (default 20 weeks before --to)")
	cmd.Flags().StringVar(&to, "to", "", "chart end (default now)")
	cmd.Flags().IntVar(&intervalMinutes, "interval", 0, "bucket width in minutes; 0 means weekly buckets")
	cmd.Flags().BoolVar(&includeGrades, "grades", false, "add a breakdown per grade")
	cmd.Flags().BoolVar(&summaryOnly, "summary", false, "print per-location count, median, average, range and quartiles instead of the chart")
	_ = cmd.MarkFlagRequired("samples")
	return cmd
}
