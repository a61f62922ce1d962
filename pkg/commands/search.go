package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/almanac-sh/almanac/pkg/commands/options"
	"github.com/almanac-sh/almanac/pkg/runner/search"
	"github.com/almanac-sh/almanac/pkg/store"
)

func addSearch(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	var query string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search event titles",
		Long: `Search event titles by substring, common synonyms, and fuzzy
matching, best matches first.`,
		Example: `
almanac search dentist
almanac search "qrtly rvw"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a query")
			}
			query = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			cal, err := store.OpenCalendar(nil)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := search.Search{
				Query:       query,
				ShowID:      io.ShowID,
				Calendar:    cal,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
