package ui

import (
	"context"
	"errors"

	"github.com/almanac-sh/almanac/pkg/store"
	"github.com/almanac-sh/almanac/pkg/tui"
)

type UI struct {
	Calendar    store.Calendar
	Persistence store.Persistence
}

func (n *UI) Do(ctx context.Context) error {
	if n.Calendar == nil {
		return errors.New("can not open the month view, no calendar")
	}
	if n.Persistence == nil {
		return errors.New("can not open the month view, no persistence")
	}
	return tui.Run(n.Calendar, n.Persistence)
}
