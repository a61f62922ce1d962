package ics

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/almanac-sh/almanac/pkg/event"
)

// Decode parses a calendar document into a flat event list plus a count
// of blocks that were dropped for missing required fields.
//
// Decoding is best effort and never fails outright: a block missing its
// SUMMARY, DTSTART, or DTEND at END:VEVENT is discarded silently (only
// the counter records the loss), unknown lines and the VCALENDAR wrapper
// are skipped, and a final block that never reaches END:VEVENT simply
// vanishes. An event without an X-EVENT-ID gets a fresh identifier.
func Decode(text string) ([]*event.Event, int) {
	events := make([]*event.Event, 0)
	discarded := 0

	var (
		title, id, categoryID string
		start, end            time.Time
		hasTitle              bool
		hasStart, hasEnd      bool
	)
	reset := func() {
		title, id, categoryID = "", "", ""
		hasTitle, hasStart, hasEnd = false, false, false
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "SUMMARY:"):
			title = Unescape(strings.TrimPrefix(line, "SUMMARY:"))
			hasTitle = true
		case strings.HasPrefix(line, "DTSTART"):
			// Prefix-only so parameterised lines (DTSTART;TZID=...) still
			// reach the instant parser.
			if t, ok := ParseInstant(fieldValue(line)); ok {
				start, hasStart = t, true
			}
		case strings.HasPrefix(line, "DTEND"):
			if t, ok := ParseInstant(fieldValue(line)); ok {
				end, hasEnd = t, true
			}
		case strings.HasPrefix(line, "CATEGORIES:"):
			categoryID = Unescape(strings.TrimPrefix(line, "CATEGORIES:"))
		case strings.HasPrefix(line, "X-EVENT-ID:"):
			id = strings.TrimPrefix(line, "X-EVENT-ID:")
		case line == "END:VEVENT":
			if hasTitle && hasStart && hasEnd {
				e := &event.Event{
					ID:         id,
					Title:      title,
					Start:      start,
					End:        end,
					CategoryID: categoryID,
				}
				if e.ID == "" {
					e.ID = uuid.NewString()
				}
				events = append(events, e)
			} else {
				discarded++
			}
			reset()
		}
	}

	return events, discarded
}
