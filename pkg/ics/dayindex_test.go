package ics

import (
	"testing"
	"time"

	"github.com/almanac-sh/almanac/pkg/event"
)

func at(day, hour int) time.Time {
	return time.Date(2025, time.May, day, hour, 0, 0, 0, time.UTC)
}

func TestBuildDayIndexGroupsAndSorts(t *testing.T) {
	events := []*event.Event{
		{ID: "c", Title: "late", Start: at(10, 16), End: at(10, 17)},
		{ID: "a", Title: "early", Start: at(10, 9), End: at(10, 10)},
		{ID: "b", Title: "other day", Start: at(11, 9), End: at(11, 10)},
	}

	index := BuildDayIndex(events)
	if len(index) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(index))
	}

	day := index["2025-05-10"]
	if len(day) != 2 {
		t.Fatalf("expected 2 events on 2025-05-10, got %d", len(day))
	}
	if day[0].ID != "a" || day[1].ID != "c" {
		t.Fatalf("bucket not sorted by start: %s, %s", day[0].ID, day[1].ID)
	}

	if len(index["2025-05-11"]) != 1 {
		t.Fatalf("expected 1 event on 2025-05-11")
	}
}

func TestBuildDayIndexEveryEventInExactlyOneBucket(t *testing.T) {
	events := []*event.Event{
		{ID: "a", Start: at(1, 8), End: at(1, 9)},
		{ID: "b", Start: at(1, 12), End: at(1, 13)},
		{ID: "c", Start: at(2, 8), End: at(2, 9)},
		{ID: "d", Start: at(28, 23), End: at(29, 1)},
	}

	index := BuildDayIndex(events)
	seen := make(map[string]int)
	for key, bucket := range index {
		if len(bucket) == 0 {
			t.Fatalf("bucket %s is empty", key)
		}
		last := bucket[0].Start
		for _, e := range bucket {
			seen[e.ID]++
			if event.DayKey(e.Start) != key {
				t.Fatalf("event %s in wrong bucket %s", e.ID, key)
			}
			if e.Start.Before(last) {
				t.Fatalf("bucket %s not non-decreasing by start", key)
			}
			last = e.Start
		}
	}
	for _, e := range events {
		if seen[e.ID] != 1 {
			t.Fatalf("event %s appeared %d times", e.ID, seen[e.ID])
		}
	}
}

func TestBuildDayIndexStableForEqualStarts(t *testing.T) {
	events := []*event.Event{
		{ID: "first", Start: at(10, 9), End: at(10, 10)},
		{ID: "second", Start: at(10, 9), End: at(10, 11)},
	}
	index := BuildDayIndex(events)
	day := index["2025-05-10"]
	if day[0].ID != "first" || day[1].ID != "second" {
		t.Fatalf("equal starts must keep encounter order, got %s, %s", day[0].ID, day[1].ID)
	}
}

func TestBuildDayIndexEmptyInput(t *testing.T) {
	if index := BuildDayIndex(nil); len(index) != 0 {
		t.Fatalf("expected empty index, got %d buckets", len(index))
	}
}
