package agenda

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/almanac-sh/almanac/pkg/category"
	"github.com/almanac-sh/almanac/pkg/event"
	"github.com/almanac-sh/almanac/pkg/ics"
	"github.com/almanac-sh/almanac/pkg/printers"
	"github.com/almanac-sh/almanac/pkg/store"
)

type Agenda struct {
	// On limits the agenda to a single day; nil prints every day that
	// has events.
	On     *time.Time
	ShowID bool

	Calendar    store.Calendar
	Persistence store.Persistence
}

func (n *Agenda) Do(ctx context.Context) error {
	if n.Calendar == nil {
		return errors.New("can not list, no calendar")
	}

	all, _, err := n.Calendar.Load()
	if err != nil {
		return err
	}
	index := ics.BuildDayIndex(all)

	var categories []*category.Category
	if n.Persistence != nil {
		categories = n.Persistence.Categories()
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Categories: categories}
	pp.NewLine()

	if n.On != nil {
		key := event.DayKey(*n.On)
		pp.TitleWithCount(key, len(index[key]))
		pp.Day(index[key]...)
		return nil
	}

	keys := make([]string, 0, len(index))
	for key := range index {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if len(keys) == 0 {
		pp.Day()
		return nil
	}
	for _, key := range keys {
		pp.TitleWithCount(key, len(index[key]))
		pp.Day(index[key]...)
	}
	return nil
}
