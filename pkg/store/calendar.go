package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/almanac-sh/almanac/pkg/event"
	"github.com/almanac-sh/almanac/pkg/ics"
)

// Calendar persists the whole event collection in one calendar file.
// Saves rewrite the document atomically (temp file then rename) so a
// crash mid-write never leaves a half-written file visible to readers.
//
// Nothing here coordinates concurrent writers: overlapping saves are a
// lost-update risk and callers must serialize them. The CLI runs one
// command at a time, which satisfies that.
type Calendar interface {
	Load() ([]*event.Event, int, error)
	Save(events []*event.Event) error
	Path() string
	Watch(ctx context.Context) (<-chan ChangeEvent, error)
}

// OpenCalendar creates a Calendar at the configured path.
func OpenCalendar(cfg Config) (Calendar, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &calendarFile{path: cfg.CalendarPath()}, nil
}

type calendarFile struct {
	path string
}

func (c *calendarFile) Path() string {
	return c.path
}

// Load reads and decodes the calendar file. A file that does not exist
// yet is an empty calendar, not an error; any other read failure is
// surfaced. The count reports blocks the decoder had to drop, so data
// loss is observable without failing the read path.
func (c *calendarFile) Load() ([]*event.Event, int, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*event.Event{}, 0, nil
		}
		return nil, 0, fmt.Errorf("store: read calendar: %w", err)
	}

	events, dropped := ics.Decode(string(data))
	if dropped > 0 {
		fmt.Fprintf(os.Stderr, "store: %s: dropped %d malformed block(s)\n", c.path, dropped)
	}
	return events, dropped, nil
}

func (c *calendarFile) Save(events []*event.Event) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("store: ensure calendar directory: %w", err)
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(ics.Encode(events)), 0o644); err != nil {
		return fmt.Errorf("store: write calendar: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("store: replace calendar: %w", err)
	}
	return nil
}
