package themes

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/almanac-sh/almanac/pkg/printers"
	"github.com/almanac-sh/almanac/pkg/store"
	"github.com/almanac-sh/almanac/pkg/theme"
)

type List struct {
	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list themes, no persistence")
	}

	active := n.Persistence.ActiveTheme()
	user := n.Persistence.Themes()

	seen := map[string]bool{}
	all := make([]*theme.Definition, 0, len(user))
	for _, d := range user {
		seen[d.Name] = true
		all = append(all, d)
	}
	for _, d := range theme.Builtins() {
		if !seen[d.Name] {
			all = append(all, d)
		}
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Themes")
	for _, d := range all {
		marker := "  "
		if d.Name == active {
			marker = color.New(color.Bold).Sprint("* ")
		}
		fmt.Printf("%s%s\n", marker, d.Name)
	}
	pp.NewLine()
	return nil
}

type Set struct {
	Name string

	Persistence store.Persistence
}

func (n *Set) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set theme, no persistence")
	}
	return n.Persistence.SetActiveTheme(n.Name)
}

// Add stores a user theme; a name matching a built-in shadows it.
type Add struct {
	Definition theme.Definition

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add theme, no persistence")
	}
	return n.Persistence.StoreTheme(&n.Definition)
}
