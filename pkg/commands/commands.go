package commands

import (
	"github.com/spf13/cobra"

	"github.com/almanac-sh/almanac/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "almanac",
		Short: "A personal calendar on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addAgenda(topLevel)
	addMonth(topLevel)
	addRemove(topLevel)
	addSearch(topLevel)
	addCategories(topLevel)
	addThemes(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
