package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Techinterview-space/web-api-sub003/internal/export"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/timerange"
	"github.com/Techinterview-space/web-api-sub003/internal/utils"
)

// month [YYYY-MM]: describe a month range, optionally with ranges cut out of it.
func monthCmd(a *app) *cobra.Command {
	var from, to, remove string

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Describe a month range or subtract ranges from it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := a.monthRange(args, from, to)
			if err != nil {
				return err
			}

			if remove == "" {
				return a.write(cmd, export.Month(month))
			}

			toRemove, err := a.parseRanges(remove)
			if err != nil {
				return err
			}
			fragments, err := month.RemoveRanges(toRemove)
			if err != nil {
				return err
			}

			a.log.Debug().
				Str("month", month.String()).
				Int("removed", len(toRemove)).
				Int("fragments", len(fragments)).
				Msg("Removed ranges from month")
			return a.write(cmd, export.Ranges(fragments))
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first instant, instead of a whole month")
	cmd.Flags().StringVar(&to, "to", "", "last instant; a date means the end of that day")
	cmd.Flags().StringVar(&remove, "remove", "", "comma separated ranges to subtract, e.g. 2024-06-01/2024-06-05")
	cmd.MarkFlagsRequiredTogether("from", "to")
	return cmd
}

func (a *app) monthRange(args []string, from, to string) (timerange.MonthRange, error) {
	loc := a.cfg.Location()

	switch {
	case len(args) == 1:
		first, err := time.ParseInLocation("2006-01", args[0], loc)
		if err != nil {
			return timerange.MonthRange{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", args[0], err)
		}
		return timerange.NewMonthRangeIn(first.Year(), first.Month(), loc), nil
	case from != "":
		start, err := a.parseTime("from", from)
		if err != nil {
			return timerange.MonthRange{}, err
		}
		end, err := utils.ParseRangeEnd(to, loc)
		if err != nil {
			return timerange.MonthRange{}, fmt.Errorf("--to: %w", err)
		}
		return timerange.NewMonthRangeFromDates(start, end)
	}

	now := time.Now().In(loc)
	return timerange.NewMonthRangeIn(now.Year(), now.Month(), loc), nil
}

// parseRanges reads "from/to" pairs; a date-only end covers its whole day
func (a *app) parseRanges(value string) ([]timerange.TimeRange, error) {
	var ranges []timerange.TimeRange
	for _, part := range utils.ParseCSV(value) {
		bounds := strings.Split(part, "/")
		if len(bounds) != 2 {
			return nil, fmt.Errorf("invalid range %q, expected from/to", part)
		}

		from, err := utils.ParseTime(bounds[0], a.cfg.Location())
		if err != nil {
			return nil, err
		}
		to, err := utils.ParseRangeEnd(bounds[1], a.cfg.Location())
		if err != nil {
			return nil, err
		}

		r, err := timerange.NewTimeRange(from, to)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}
