package ics

import (
	"strings"
	"time"
)

// instantLayout is the only timestamp shape the format carries: UTC,
// second precision, zero padded, no separators.
const instantLayout = "20060102T150405Z"

// FormatInstant renders an instant in the fixed wire pattern. Sub-second
// components are not representable and get truncated.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(instantLayout)
}

// ParseInstant parses the fixed wire pattern. Any deviation fails the
// parse; callers treat a failed parse as an absent field. There is no
// flexible fallback for timezone-qualified variants.
func ParseInstant(v string) (time.Time, bool) {
	t, err := time.Parse(instantLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// fieldValue returns the value portion of a content line. Parameters may
// sit between the field name and the value (DTSTART;TZID=...:20250510...),
// so the value is whatever follows the last colon. Parameter semantics
// are discarded; a decorated line should not hard-fail the whole file.
func fieldValue(line string) string {
	if i := strings.LastIndex(line, ":"); i >= 0 {
		return line[i+1:]
	}
	return line
}
