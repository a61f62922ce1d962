// Package ics reads and writes the calendar event file: a line oriented,
// block structured text format modeled on iCalendar VEVENT records. It is
// a deliberately restricted subset — no recurrence rules, no alarms, no
// RFC 5545 line folding — just enough to round-trip this application's
// own output while preserving event identity and special characters.
package ics

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/almanac-sh/almanac/pkg/event"
)

const prodID = "-//almanac//almanac calendar//EN"

// now is swapped out in tests to keep DTSTAMP lines deterministic.
var now = time.Now

// Encode serialises events into a complete calendar document. Field
// order within a block is fixed and lines are joined with \n. The UID
// line is freshly generated on every save and never read back; identity
// across save/load cycles rides on the X-EVENT-ID line instead.
func Encode(events []*event.Event) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\n")
	b.WriteString("VERSION:2.0\n")
	b.WriteString("PRODID:" + prodID + "\n")
	stamp := FormatInstant(now())
	for _, e := range events {
		if e == nil {
			continue
		}
		b.WriteString("BEGIN:VEVENT\n")
		b.WriteString("X-EVENT-ID:" + e.ID + "\n")
		b.WriteString("UID:" + uuid.NewString() + "\n")
		b.WriteString("DTSTAMP:" + stamp + "\n")
		b.WriteString("DTSTART:" + FormatInstant(e.Start) + "\n")
		b.WriteString("DTEND:" + FormatInstant(e.End) + "\n")
		b.WriteString("SUMMARY:" + Escape(e.Title) + "\n")
		if e.CategoryID != "" {
			b.WriteString("CATEGORIES:" + Escape(e.CategoryID) + "\n")
		}
		b.WriteString("END:VEVENT\n")
	}
	b.WriteString("END:VCALENDAR")
	return b.String()
}
