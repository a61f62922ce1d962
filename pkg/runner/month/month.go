package month

import (
	"context"
	"errors"
	"time"

	"github.com/almanac-sh/almanac/pkg/ics"
	"github.com/almanac-sh/almanac/pkg/printers"
	"github.com/almanac-sh/almanac/pkg/store"
)

type Month struct {
	// On selects the month to print; zero means the current month.
	On time.Time

	Calendar store.Calendar
}

func (n *Month) Do(ctx context.Context) error {
	if n.Calendar == nil {
		return errors.New("can not print month, no calendar")
	}

	then := n.On
	if then.IsZero() {
		then = time.Now().UTC()
	}

	all, _, err := n.Calendar.Load()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Month(then, ics.BuildDayIndex(all))
	return nil
}
