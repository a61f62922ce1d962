package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/almanac-sh/almanac/pkg/commands/options"
	"github.com/almanac-sh/almanac/pkg/runner/agenda"
	"github.com/almanac-sh/almanac/pkg/store"
)

func addAgenda(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	var all bool

	cmd := &cobra.Command{
		Use:     "agenda",
		Short:   "List the events of a day",
		Aliases: []string{"ls", "list"},
		Example: `
almanac agenda
almanac agenda --on="2/28"
almanac agenda --all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			if on == nil && !all {
				now := time.Now()
				on = &now
			}

			cal, err := store.OpenCalendar(nil)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := agenda.Agenda{
				On:          on,
				ShowID:      io.ShowID,
				Calendar:    cal,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List every day with events.")
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
