package merge

import (
	"sort"
	"time"

	"github.com/penwyp/go-entparser/internal/core/model"
)

// Window is the largest gap, exclusive, between two checks of the same
// location that are treated as one.
const Window = time.Minute

// Separator joins pruned counts of merged events.
const Separator = ", "

// Merge collapses runs of adjacent events at the same location whose
// consecutive timestamps are less than Window apart. The surviving record
// keeps the newest timestamp and lists pruned counts newest first. The input
// slice is not modified.
func Merge(events []model.Event) []model.Event {
	if len(events) == 0 {
		return nil
	}

	out := make([]model.Event, 0, len(events))
	acc := events[0]
	for _, next := range events[1:] {
		if next.Location == acc.Location && next.Timestamp.Sub(acc.Timestamp) < Window {
			next.PrunedCount = next.PrunedCount + Separator + acc.PrunedCount
			acc = next
			continue
		}
		out = append(out, acc)
		acc = next
	}
	return append(out, acc)
}

// SortStable orders events by timestamp, keeping the input order of equal
// timestamps.
func SortStable(events []model.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
}
