package search

import (
	"context"
	"errors"

	"github.com/almanac-sh/almanac/pkg/category"
	"github.com/almanac-sh/almanac/pkg/event"
	"github.com/almanac-sh/almanac/pkg/printers"
	"github.com/almanac-sh/almanac/pkg/search"
	"github.com/almanac-sh/almanac/pkg/store"
)

type Search struct {
	Query  string
	ShowID bool

	Calendar    store.Calendar
	Persistence store.Persistence
}

func (n *Search) Do(ctx context.Context) error {
	if n.Calendar == nil {
		return errors.New("can not search, no calendar")
	}
	if n.Query == "" {
		return errors.New("a search query is required")
	}

	all, _, err := n.Calendar.Load()
	if err != nil {
		return err
	}

	matches := search.Search(all, n.Query)
	found := make([]*event.Event, 0, len(matches))
	for _, m := range matches {
		found = append(found, m.Event)
	}

	var categories []*category.Category
	if n.Persistence != nil {
		categories = n.Persistence.Categories()
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Categories: categories}
	pp.NewLine()
	pp.TitleWithCount(n.Query, len(found))
	pp.Day(found...)
	return nil
}
