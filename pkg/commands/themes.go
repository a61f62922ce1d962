package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/almanac-sh/almanac/pkg/runner/themes"
	"github.com/almanac-sh/almanac/pkg/store"
	"github.com/almanac-sh/almanac/pkg/theme"
)

func addThemes(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "themes",
		Short:   "Manage month view themes",
		Aliases: []string{"theme"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := themes.List{Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addThemesSet(cmd)
	addThemesAdd(cmd)

	topLevel.AddCommand(cmd)
}

func addThemesSet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Choose the active theme",
		Example: `
almanac themes set solarized
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a theme name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := themes.Set{
				Name:        args[0],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addThemesAdd(topLevel *cobra.Command) {
	def := theme.Definition{}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a user theme; a built-in name is shadowed",
		Example: `
almanac themes add dusk --accent="#875fff" --today="#ffffff"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a theme name")
			}
			def.Name = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := themes.Add{
				Definition:  def,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&def.Accent, "accent", "", "Accent color as hex.")
	cmd.Flags().StringVar(&def.Today, "today", "", "Color for the current day.")
	cmd.Flags().StringVar(&def.Weekend, "weekend", "", "Color for weekend days.")
	cmd.Flags().StringVar(&def.Faint, "faint", "", "Color for de-emphasized text.")

	topLevel.AddCommand(cmd)
}
