package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/almanac-sh/almanac/pkg/commands/options"
	"github.com/almanac-sh/almanac/pkg/runner/categories"
	"github.com/almanac-sh/almanac/pkg/store"
)

func addCategories(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "categories",
		Short:   "Manage event categories",
		Aliases: []string{"category", "cat"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := categories.List{JSON: output.JSON, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	addCategoriesAdd(cmd)
	addCategoriesRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addCategoriesAdd(topLevel *cobra.Command) {
	var hex string
	var name string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Example: `
almanac categories add work --color="#268bd2"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := categories.Add{
				Name:        name,
				Color:       hex,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&hex, "color", "", `Accent color as hex, example: --color="#268bd2".`)

	topLevel.AddCommand(cmd)
}

func addCategoriesRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove <id>",
		Short:   "Remove a category; events keep the key and show it raw",
		Aliases: []string{"rm"},
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a category id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := categories.Remove{
				ID:          args[0],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
