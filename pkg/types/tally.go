package types

import (
	"maps"
	"slices"
	"time"
)

// Tally is a recorded Processor result: how often each item occurred in one
// consumer run.
type Tally struct {
	TallyID   string         `json:"tally_id"`   // UUID v7, assigned by the Store when empty.
	Consumer  string         `json:"consumer"`   // Name of the consumer that produced the counts.
	Counts    map[string]int `json:"counts"`     // Occurrences keyed by item.
	CreatedAt time.Time      `json:"created_at"` // Stamped by the Store when zero.
}

// NewTally returns an unsaved Tally for consumer. Counts are copied so later
// changes to counts do not leak into the Tally.
func NewTally(consumer string, counts map[string]int) *Tally {
	c := make(map[string]int, len(counts))
	maps.Copy(c, counts)
	return &Tally{
		Consumer: consumer,
		Counts:   c,
	}
}

// Total returns the sum of all counts.
func (t *Tally) Total() int {
	total := 0
	for _, n := range t.Counts {
		total += n
	}
	return total
}

// Items returns the counted items in sorted order.
func (t *Tally) Items() []string {
	return slices.Sorted(maps.Keys(t.Counts))
}
