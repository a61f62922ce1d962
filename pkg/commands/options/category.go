package options

import (
	"github.com/spf13/cobra"
)

// CategoryOptions
type CategoryOptions struct {
	Category string
}

func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Tag the event with a category, by name or id.")
}
