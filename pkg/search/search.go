// Package search finds events by keyword. Matching is deliberately
// simple: a case-insensitive substring scan over titles, widened by a
// small synonym dictionary, with fuzzy matching as a fallback for typos.
package search

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/almanac-sh/almanac/pkg/event"
)

// Match pairs an event with its relevance. Higher scores sort first.
type Match struct {
	Event *event.Event
	Score int
}

const (
	scoreSubstring = 1000
	scoreSynonym   = 500
)

// synonyms maps a keyword to terms that should hit as well. Lookups work
// in both directions, so searching "call" also finds "meeting".
var synonyms = map[string][]string{
	"meeting":  {"call", "sync", "standup", "1:1"},
	"birthday": {"bday"},
	"doctor":   {"dentist", "checkup", "appointment"},
	"holiday":  {"vacation", "trip", "break"},
	"workout":  {"gym", "run", "training"},
	"dinner":   {"lunch", "brunch"},
}

// Search ranks events against the query. Exact substring hits come
// first, synonym hits next, fuzzy hits last; within a tier the input
// order is kept.
func Search(events []*event.Event, query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" || len(events) == 0 {
		return nil
	}

	scores := make(map[string]int, len(events))
	byID := make(map[string]*event.Event, len(events))
	order := make(map[string]int, len(events))

	record := func(e *event.Event, score int) {
		if score > scores[e.ID] {
			scores[e.ID] = score
		}
	}

	lowered := strings.ToLower(query)
	terms := expand(lowered)

	for i, e := range events {
		if e == nil {
			continue
		}
		byID[e.ID] = e
		order[e.ID] = i

		title := strings.ToLower(e.Title)
		if strings.Contains(title, lowered) {
			record(e, scoreSubstring)
			continue
		}
		for _, term := range terms {
			if strings.Contains(title, term) {
				record(e, scoreSynonym)
				break
			}
		}
	}

	// Fuzzy pass over everything not already matched.
	titles := make([]string, len(events))
	for i, e := range events {
		if e != nil {
			titles[i] = e.Title
		}
	}
	for _, m := range fuzzy.Find(query, titles) {
		e := events[m.Index]
		if e == nil || scores[e.ID] > 0 {
			continue
		}
		score := m.Score
		if score < 1 {
			score = 1
		}
		record(e, score)
	}

	matches := make([]Match, 0, len(scores))
	for id, score := range scores {
		matches = append(matches, Match{Event: byID[id], Score: score})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return order[matches[i].Event.ID] < order[matches[j].Event.ID]
	})
	return matches
}

// expand returns the synonym terms for a query, excluding the query
// itself.
func expand(query string) []string {
	seen := map[string]bool{query: true}
	var terms []string
	add := func(t string) {
		if !seen[t] {
			seen[t] = true
			terms = append(terms, t)
		}
	}

	for base, alts := range synonyms {
		if base == query {
			for _, a := range alts {
				add(a)
			}
			continue
		}
		for _, a := range alts {
			if a == query {
				add(base)
				for _, other := range alts {
					add(other)
				}
				break
			}
		}
	}
	return terms
}
