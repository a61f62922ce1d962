package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/almanac-sh/almanac/pkg/commands/options"
	"github.com/almanac-sh/almanac/pkg/runner/month"
	"github.com/almanac-sh/almanac/pkg/store"
)

func addMonth(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Print a month grid, highlighting days with events",
		Example: `
almanac month
almanac month --on="2026-12-1"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			then := time.Time{}
			if on != nil {
				then = *on
			}

			cal, err := store.OpenCalendar(nil)
			if err != nil {
				return err
			}

			s := month.Month{
				On:       then,
				Calendar: cal,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
