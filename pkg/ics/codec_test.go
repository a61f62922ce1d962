package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/almanac-sh/almanac/pkg/event"
)

func fixedNow(t *testing.T) {
	t.Helper()
	orig := now
	now = func() time.Time {
		return time.Date(2025, time.May, 11, 12, 0, 0, 0, time.UTC)
	}
	t.Cleanup(func() { now = orig })
}

func TestEncodeConcreteScenario(t *testing.T) {
	fixedNow(t)

	e := &event.Event{
		ID:         "U1",
		Title:      "Meeting; Q&A, notes\nline2",
		Start:      time.Date(2025, time.May, 10, 9, 0, 0, 0, time.UTC),
		End:        time.Date(2025, time.May, 10, 10, 0, 0, 0, time.UTC),
		CategoryID: "work-1",
	}

	doc := Encode([]*event.Event{e})

	for _, want := range []string{
		"BEGIN:VCALENDAR\n",
		"VERSION:2.0\n",
		"PRODID:" + prodID + "\n",
		"BEGIN:VEVENT\n",
		"X-EVENT-ID:U1\n",
		"DTSTAMP:20250511T120000Z\n",
		"DTSTART:20250510T090000Z\n",
		"DTEND:20250510T100000Z\n",
		`SUMMARY:Meeting\; Q&A\, notes\nline2` + "\n",
		"CATEGORIES:work-1\n",
		"END:VEVENT\n",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document missing %q:\n%s", want, doc)
		}
	}
	if !strings.HasSuffix(doc, "END:VCALENDAR") {
		t.Fatalf("document should end with END:VCALENDAR:\n%s", doc)
	}
	if !strings.Contains(doc, "UID:") {
		t.Fatalf("document missing UID line:\n%s", doc)
	}
	if strings.Contains(doc, "UID:U1\n") {
		t.Fatalf("UID must not reuse the event id:\n%s", doc)
	}
}

func TestEncodeOmitsEmptyCategory(t *testing.T) {
	fixedNow(t)

	e := event.New("dentist",
		time.Date(2025, time.May, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2025, time.May, 10, 10, 0, 0, 0, time.UTC))

	doc := Encode([]*event.Event{e})
	if strings.Contains(doc, "CATEGORIES:") {
		t.Fatalf("CATEGORIES should be omitted when unset:\n%s", doc)
	}
}

func TestRoundTripIdentity(t *testing.T) {
	fixedNow(t)

	e := &event.Event{
		ID:         "U1",
		Title:      "Meeting; Q&A, notes\nline2",
		Start:      time.Date(2025, time.May, 10, 9, 0, 0, 500_000_000, time.UTC),
		End:        time.Date(2025, time.May, 10, 10, 0, 0, 0, time.UTC),
		CategoryID: "work-1",
	}

	decoded, dropped := Decode(Encode([]*event.Event{e}))
	if dropped != 0 {
		t.Fatalf("expected no dropped blocks, got %d", dropped)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 event, got %d", len(decoded))
	}
	got := decoded[0]
	if got.ID != "U1" {
		t.Fatalf("id did not survive: %q", got.ID)
	}
	if got.Title != e.Title {
		t.Fatalf("title did not survive: %q", got.Title)
	}
	if got.CategoryID != "work-1" {
		t.Fatalf("category did not survive: %q", got.CategoryID)
	}
	// Start survives up to second precision only.
	if !got.Start.Equal(e.Start.Truncate(time.Second)) {
		t.Fatalf("expected start %v, got %v", e.Start.Truncate(time.Second), got.Start)
	}
	if !got.End.Equal(e.End) {
		t.Fatalf("expected end %v, got %v", e.End, got.End)
	}
}

func TestRoundTripUnicodeTitle(t *testing.T) {
	fixedNow(t)

	e := &event.Event{
		ID:    "jp",
		Title: "歯医者の予約 🦷",
		Start: time.Date(2025, time.May, 10, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.May, 10, 10, 0, 0, 0, time.UTC),
	}
	decoded, _ := Decode(Encode([]*event.Event{e}))
	if len(decoded) != 1 || decoded[0].Title != e.Title {
		t.Fatalf("multi-byte title did not round trip: %#v", decoded)
	}
}

func TestDecodeDropsMalformedBlock(t *testing.T) {
	doc := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"SUMMARY:no end time",
		"DTSTART:20250510T090000Z",
		"END:VEVENT",
		"END:VCALENDAR",
	}, "\n")

	events, dropped := Decode(doc)
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
	if dropped != 1 {
		t.Fatalf("expected 1 dropped block, got %d", dropped)
	}
}

func TestDecodeScratchResetAfterDrop(t *testing.T) {
	// A malformed block must not leak its fields into the next one.
	doc := strings.Join([]string{
		"BEGIN:VEVENT",
		"SUMMARY:broken",
		"DTSTART:20250510T090000Z",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"X-EVENT-ID:ok",
		"SUMMARY:fine",
		"DTSTART:20250511T090000Z",
		"DTEND:20250511T100000Z",
		"END:VEVENT",
	}, "\n")

	events, dropped := Decode(doc)
	if dropped != 1 {
		t.Fatalf("expected 1 dropped block, got %d", dropped)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Title != "fine" || events[0].ID != "ok" {
		t.Fatalf("unexpected event: %#v", events[0])
	}
}

func TestDecodeUnparseableTimestampActsAbsent(t *testing.T) {
	doc := strings.Join([]string{
		"BEGIN:VEVENT",
		"SUMMARY:bad start",
		"DTSTART:yesterday-ish",
		"DTEND:20250510T100000Z",
		"END:VEVENT",
	}, "\n")

	events, dropped := Decode(doc)
	if len(events) != 0 || dropped != 1 {
		t.Fatalf("expected the block to be treated as malformed, got %d events, %d dropped", len(events), dropped)
	}
}

func TestDecodeParameterisedTimestampLines(t *testing.T) {
	doc := strings.Join([]string{
		"BEGIN:VEVENT",
		"SUMMARY:decorated",
		"DTSTART;TZID=America/New_York:20250510T090000Z",
		"DTEND;VALUE=DATE-TIME:20250510T100000Z",
		"END:VEVENT",
	}, "\n")

	events, dropped := Decode(doc)
	if dropped != 0 || len(events) != 1 {
		t.Fatalf("decorated lines should decode, got %d events, %d dropped", len(events), dropped)
	}
	want := time.Date(2025, time.May, 10, 9, 0, 0, 0, time.UTC)
	if !events[0].Start.Equal(want) {
		t.Fatalf("expected %v, got %v", want, events[0].Start)
	}
}

func TestDecodeMissingIDGetsFreshOne(t *testing.T) {
	doc := strings.Join([]string{
		"BEGIN:VEVENT",
		"SUMMARY:anonymous",
		"DTSTART:20250510T090000Z",
		"DTEND:20250510T100000Z",
		"END:VEVENT",
	}, "\n")

	events, _ := Decode(doc)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].ID == "" {
		t.Fatalf("expected a generated id")
	}
}

func TestDecodeIgnoresNoiseAndPartialTail(t *testing.T) {
	doc := strings.Join([]string{
		"this is not a calendar line",
		"BEGIN:VCALENDAR",
		"  BEGIN:VEVENT  ",
		"X-EVENT-ID:first",
		"SUMMARY:kept",
		"DTSTART:20250510T090000Z",
		"DTEND:20250510T100000Z",
		"END:VEVENT",
		"",
		"BEGIN:VEVENT",
		"SUMMARY:never terminated",
		"DTSTART:20250511T090000Z",
	}, "\n")

	events, dropped := Decode(doc)
	if len(events) != 1 || events[0].ID != "first" {
		t.Fatalf("expected only the complete block, got %#v", events)
	}
	// The trailing block never reached END:VEVENT, so it is not counted.
	if dropped != 0 {
		t.Fatalf("expected 0 dropped blocks, got %d", dropped)
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	events, dropped := Decode("")
	if len(events) != 0 || dropped != 0 {
		t.Fatalf("expected empty result, got %d events, %d dropped", len(events), dropped)
	}
}
