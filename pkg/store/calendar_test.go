package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/almanac-sh/almanac/pkg/event"
)

type testConfig struct {
	root string
}

func (c *testConfig) CalendarPath() string { return filepath.Join(c.root, "events.ics") }
func (c *testConfig) BasePath() string     { return filepath.Join(c.root, "db") }

func testCalendar(t *testing.T) Calendar {
	t.Helper()
	cal, err := OpenCalendar(&testConfig{root: t.TempDir()})
	if err != nil {
		t.Fatalf("open calendar: %v", err)
	}
	return cal
}

func TestLoadMissingFileYieldsEmpty(t *testing.T) {
	cal := testCalendar(t)

	events, dropped, err := cal.Load()
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if len(events) != 0 || dropped != 0 {
		t.Fatalf("expected empty calendar, got %d events, %d dropped", len(events), dropped)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cal := testCalendar(t)

	e := &event.Event{
		ID:         "U1",
		Title:      "Meeting; Q&A, notes\nline2",
		Start:      time.Date(2025, time.May, 10, 9, 0, 0, 0, time.UTC),
		End:        time.Date(2025, time.May, 10, 10, 0, 0, 0, time.UTC),
		CategoryID: "work-1",
	}
	if err := cal.Save([]*event.Event{e}); err != nil {
		t.Fatalf("save: %v", err)
	}

	events, dropped, err := cal.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if dropped != 0 {
		t.Fatalf("expected no dropped blocks, got %d", dropped)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	got := events[0]
	if got.ID != e.ID || got.Title != e.Title || got.CategoryID != e.CategoryID {
		t.Fatalf("event did not survive the round trip: %#v", got)
	}
	if !got.Start.Equal(e.Start) || !got.End.Equal(e.End) {
		t.Fatalf("times did not survive: %v, %v", got.Start, got.End)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	cal := testCalendar(t)

	if err := cal.Save(nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(cal.Path()); err != nil {
		t.Fatalf("calendar file missing after save: %v", err)
	}
	if _, err := os.Stat(cal.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file should have been renamed away")
	}
}

func TestLoadReportsDroppedBlocks(t *testing.T) {
	cal := testCalendar(t)

	doc := "BEGIN:VCALENDAR\nBEGIN:VEVENT\nSUMMARY:no times\nEND:VEVENT\nEND:VCALENDAR"
	if err := os.MkdirAll(filepath.Dir(cal.Path()), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(cal.Path(), []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	events, dropped, err := cal.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 0 || dropped != 1 {
		t.Fatalf("expected 0 events and 1 dropped block, got %d and %d", len(events), dropped)
	}
}

func TestLoadSurfacesOtherIOErrors(t *testing.T) {
	root := t.TempDir()
	cal, err := OpenCalendar(&testConfig{root: root})
	if err != nil {
		t.Fatalf("open calendar: %v", err)
	}
	// A directory at the calendar path is unreadable as a file.
	if err := os.MkdirAll(cal.Path(), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, _, err := cal.Load(); err == nil {
		t.Fatalf("expected an error for an unreadable calendar")
	}
}
