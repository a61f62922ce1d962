package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/almanac-sh/almanac/pkg/runner/ui"
	"github.com/almanac-sh/almanac/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive month view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cal, err := store.OpenCalendar(nil)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := ui.UI{
				Calendar:    cal,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
