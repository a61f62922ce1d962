package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/almanac-sh/almanac/pkg/event"
	"github.com/almanac-sh/almanac/pkg/store"
)

type Remove struct {
	ID string

	Calendar store.Calendar
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Calendar == nil {
		return errors.New("can not remove, no calendar")
	}
	if n.ID == "" {
		return errors.New("an event id is required")
	}

	all, _, err := n.Calendar.Load()
	if err != nil {
		return err
	}

	kept := make([]*event.Event, 0, len(all))
	var removed *event.Event
	for _, e := range all {
		if e.ID == n.ID {
			removed = e
			continue
		}
		kept = append(kept, e)
	}
	if removed == nil {
		return fmt.Errorf("no event with id %q", n.ID)
	}

	if err := n.Calendar.Save(kept); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", removed)
	return nil
}
