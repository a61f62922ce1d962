package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/almanac-sh/almanac/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(almanac completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(almanac completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func categoryCompletions(toComplete string) []string {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	var names []string
	for _, c := range p.Categories() {
		if toComplete == "" || strings.HasPrefix(c.Name, toComplete) {
			names = append(names, c.Name)
		}
	}
	return names
}
