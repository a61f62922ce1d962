package add

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/almanac-sh/almanac/pkg/category"
	"github.com/almanac-sh/almanac/pkg/event"
	"github.com/almanac-sh/almanac/pkg/ics"
	"github.com/almanac-sh/almanac/pkg/printers"
	"github.com/almanac-sh/almanac/pkg/store"
	"github.com/almanac-sh/almanac/pkg/timeutil"
)

type Add struct {
	Title    string
	Start    time.Time
	Duration string
	Category string // name or id, optional

	ShowID bool

	Calendar    store.Calendar
	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Calendar == nil {
		return errors.New("can not add, no calendar")
	}
	if strings.TrimSpace(n.Title) == "" {
		return errors.New("an event needs a title")
	}
	if n.Start.IsZero() {
		return errors.New("an event needs a start time")
	}

	d, _, err := timeutil.ParseDuration(n.Duration)
	if err != nil {
		return err
	}

	e := event.New(n.Title, n.Start, n.Start.Add(d))

	var categories []*category.Category
	if n.Persistence != nil {
		categories = n.Persistence.Categories()
	}
	if n.Category != "" {
		c, ok := resolve(categories, n.Category)
		if !ok {
			return fmt.Errorf("unknown category %q", n.Category)
		}
		e.CategoryID = c.ID
	}

	all, _, err := n.Calendar.Load()
	if err != nil {
		return err
	}
	all = append(all, e)
	if err := n.Calendar.Save(all); err != nil {
		return err
	}

	key := event.DayKey(e.Start)
	index := ics.BuildDayIndex(all)

	pp := printers.PrettyPrint{ShowID: n.ShowID, Categories: categories}
	pp.NewLine()
	pp.TitleWithCount(key, len(index[key]))
	pp.Day(index[key]...)
	return nil
}

// resolve accepts either a category id or a name, case-insensitively.
func resolve(categories []*category.Category, nameOrID string) (*category.Category, bool) {
	if c, ok := category.Find(categories, nameOrID); ok {
		return c, true
	}
	for _, c := range categories {
		if c != nil && strings.EqualFold(c.Name, nameOrID) {
			return c, true
		}
	}
	return nil, false
}
