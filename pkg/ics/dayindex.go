package ics

import (
	"sort"

	"github.com/almanac-sh/almanac/pkg/event"
)

// BuildDayIndex groups events by the UTC calendar day of their start
// time. A day key exists only if at least one event maps to it; each
// bucket is sorted ascending by start with a stable sort, so events with
// equal starts keep the order they were decoded in.
func BuildDayIndex(events []*event.Event) map[string][]*event.Event {
	index := make(map[string][]*event.Event)
	for _, e := range events {
		if e == nil {
			continue
		}
		key := event.DayKey(e.Start)
		index[key] = append(index[key], e)
	}
	for key := range index {
		bucket := index[key]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Start.Before(bucket[j].Start)
		})
	}
	return index
}
