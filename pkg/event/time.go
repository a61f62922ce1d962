package event

import "time"

const dayKeyLayout = "2006-01-02"

// DayKey returns the calendar day an instant falls on, in UTC. Instants
// in the calendar file are UTC, so the day index is derived in UTC too.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}

// ParseDayKey turns a YYYY-MM-DD key back into the midnight of that day.
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(dayKeyLayout, key)
}

func SameDay(t, then time.Time) bool {
	if t.UTC().Day() == then.UTC().Day() &&
		t.UTC().Month() == then.UTC().Month() &&
		t.UTC().Year() == then.UTC().Year() {
		return true
	}
	return false
}

func SameMonth(t, then time.Time) bool {
	if t.UTC().Month() == then.UTC().Month() &&
		t.UTC().Year() == then.UTC().Year() {
		return true
	}
	return false
}
