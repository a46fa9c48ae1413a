package schedule

import (
	"sort"

	"github.com/kamilarndt/fabmanage-api/internal/models"
)

// AnnotatedEvent is an event together with its conflict flag.
type AnnotatedEvent struct {
	models.Event
	Conflict bool `json:"conflict"`
}

// MarkConflicts flags every event that participates in at least one
// overlapping pair on the same resource. Intervals are half-open: two events
// that touch exactly at a boundary do not conflict. Events without a resource
// cannot collide and are never flagged.
func MarkConflicts(events []models.Event) []AnnotatedEvent {
	annotated := make([]AnnotatedEvent, len(events))
	for i, e := range events {
		annotated[i] = AnnotatedEvent{Event: e}
	}

	// Partition positions by resource, keeping insertion order for equal starts.
	byResource := make(map[string][]int)
	for i, e := range events {
		if e.ResourceID == nil || *e.ResourceID == "" {
			continue
		}
		byResource[*e.ResourceID] = append(byResource[*e.ResourceID], i)
	}

	for _, idxs := range byResource {
		sort.SliceStable(idxs, func(a, b int) bool {
			return events[idxs[a]].Start.Before(events[idxs[b]].Start)
		})
		for i := 0; i < len(idxs); i++ {
			cur := events[idxs[i]]
			for j := i + 1; j < len(idxs); j++ {
				next := events[idxs[j]]
				// Sorted by start, so once next starts at or after cur ends
				// nothing later can overlap cur either.
				if !next.Start.Before(cur.End) {
					break
				}
				annotated[idxs[i]].Conflict = true
				annotated[idxs[j]].Conflict = true
			}
		}
	}

	return annotated
}

// HasConflicts reports whether any pair of events on the same resource
// overlaps in time.
func HasConflicts(events []models.Event) bool {
	for _, e := range MarkConflicts(events) {
		if e.Conflict {
			return true
		}
	}
	return false
}

// ResourcesWithConflicts returns the ids of resources carrying at least one
// overlapping pair, in no particular order.
func ResourcesWithConflicts(events []models.Event) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, e := range MarkConflicts(events) {
		if !e.Conflict || e.ResourceID == nil {
			continue
		}
		if _, ok := seen[*e.ResourceID]; ok {
			continue
		}
		seen[*e.ResourceID] = struct{}{}
		ids = append(ids, *e.ResourceID)
	}
	return ids
}
