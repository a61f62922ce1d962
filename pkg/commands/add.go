package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/almanac-sh/almanac/pkg/commands/options"
	"github.com/almanac-sh/almanac/pkg/runner/add"
	"github.com/almanac-sh/almanac/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	wo := &options.WhenOptions{}
	co := &options.CategoryOptions{}
	io := &options.IDOptions{}

	var title string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an event",
		Example: `
almanac add standup --at="09:30" --for="15m"
almanac add dentist --on="2/28" --at="14:00" --category=health
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			start, err := wo.GetStart(on)
			if err != nil {
				return output.HandleError(err)
			}
			length, err := wo.GetDuration()
			if err != nil {
				return output.HandleError(err)
			}

			cal, err := store.OpenCalendar(nil)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := add.Add{
				Title:       title,
				Start:       start,
				Duration:    length,
				Category:    co.Category,
				ShowID:      io.ShowID,
				Calendar:    cal,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddWhenArgs(cmd, wo)
	options.AddCategoryArgs(cmd, co)
	options.AddShowIDArgs(cmd, io)

	flagName := "category"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return categoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
