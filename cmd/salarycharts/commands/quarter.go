package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Techinterview-space/web-api-sub003/internal/export"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/timerange"
)

// quarter [date]: print the quarter of a date, shifted by --offset quarters.
func quarterCmd(a *app) *cobra.Command {
	var offset int

	cmd := &cobra.Command{
		Use:   "quarter [date]",
		Short: "Print the calendar quarter of a date (default now)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at := time.Now().In(a.cfg.Location())
			if len(args) == 1 {
				t, err := a.parseTime("date", args[0])
				if err != nil {
					return err
				}
				at = t
			}

			q := timerange.NewDateQuarter(at)
			for ; offset > 0; offset-- {
				q = q.Next()
			}
			for ; offset < 0; offset++ {
				q = q.Previous()
			}

			return a.write(cmd, export.Quarter(q, a.cfg.Location()))
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "quarters to move forward (negative moves back)")
	return cmd
}
