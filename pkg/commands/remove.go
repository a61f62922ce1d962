package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/almanac-sh/almanac/pkg/runner/remove"
	"github.com/almanac-sh/almanac/pkg/store"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove <id>",
		Short:   "Remove an event by id",
		Aliases: []string{"rm"},
		Example: `
almanac remove 171dff69-f8b9-4b09-9dca-6c2dbd3a0157
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires an event id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cal, err := store.OpenCalendar(nil)
			if err != nil {
				return err
			}

			s := remove.Remove{
				ID:       args[0],
				Calendar: cal,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
