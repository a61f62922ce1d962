package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/almanac-sh/almanac/pkg/event"
	"github.com/almanac-sh/almanac/pkg/ics"
	"github.com/almanac-sh/almanac/pkg/theme"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	m := New(nil, theme.Default())
	m.selected = time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	m.today = m.selected
	return m
}

func TestViewShowsMonthAndSelectedDay(t *testing.T) {
	m := testModel(t)
	e := &event.Event{
		ID:    "U1",
		Title: "Standup",
		Start: time.Date(2025, time.May, 10, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.May, 10, 10, 0, 0, 0, time.UTC),
	}
	m.index = ics.BuildDayIndex([]*event.Event{e})

	out := m.View()
	if !strings.Contains(out, "May 2025") {
		t.Fatalf("view missing month title:\n%s", out)
	}
	if !strings.Contains(out, "2025-05-10") {
		t.Fatalf("view missing selected day key:\n%s", out)
	}
	if !strings.Contains(out, "Standup") {
		t.Fatalf("view missing the day's events:\n%s", out)
	}
}

func TestNavigationCrossesMonths(t *testing.T) {
	m := testModel(t)
	m.selected = time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	m = next.(*Model)
	if got := event.DayKey(m.selected); got != "2025-06-01" {
		t.Fatalf("expected selection to roll into June, got %s", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'H'}})
	m = next.(*Model)
	if m.selected.Month() != time.May {
		t.Fatalf("expected page-up to go back a month, got %s", m.selected.Month())
	}
}

func TestLoadedMsgUpdatesIndex(t *testing.T) {
	m := testModel(t)
	e := &event.Event{
		ID:    "x",
		Title: "later",
		Start: time.Date(2025, time.May, 12, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.May, 12, 10, 0, 0, 0, time.UTC),
	}
	next, _ := m.Update(loadedMsg{index: ics.BuildDayIndex([]*event.Event{e}), dropped: 2})
	m = next.(*Model)
	if len(m.index) != 1 || m.dropped != 2 {
		t.Fatalf("loaded message not applied: %d buckets, %d dropped", len(m.index), m.dropped)
	}
}
