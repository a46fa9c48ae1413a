package schedule

import (
	"math"
	"time"

	"github.com/kamilarndt/fabmanage-api/internal/models"
)

// DefaultCapacityHours is the nominal weekly capacity of one resource.
const DefaultCapacityHours = 40.0

// WorkloadOptions configures ComputeWorkload. A zero CapacityHours falls back
// to DefaultCapacityHours. AllowOvercommit lets the percentage exceed 100 to
// flag over-allocation instead of hard-capping it.
type WorkloadOptions struct {
	CapacityHours   float64
	AllowOvercommit bool
}

// ResourceWorkload summarizes one resource's booked time within a window.
type ResourceWorkload struct {
	ResourceID string  `json:"resource_id"`
	Hours      float64 `json:"hours"`
	Percent    int     `json:"percent"`
	EventCount int     `json:"event_count"`
}

// WeekWindow returns the calendar week containing t: Monday 00:00 local time
// through the following Monday (half-open).
func WeekWindow(t time.Time) (time.Time, time.Time) {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	start = start.AddDate(0, 0, -(weekday - 1))
	return start, start.AddDate(0, 0, 7)
}

// ComputeWorkload sums the booked hours of every known resource within the
// half-open window [winStart, winEnd), clipping events that cross a boundary.
// Events without a resource, or whose resource id matches no known resource,
// contribute to no total.
func ComputeWorkload(events []models.Event, resources []models.Resource, winStart, winEnd time.Time, opts WorkloadOptions) map[string]ResourceWorkload {
	capacity := opts.CapacityHours
	if capacity <= 0 {
		capacity = DefaultCapacityHours
	}

	result := make(map[string]ResourceWorkload, len(resources))
	for _, r := range resources {
		result[r.ID] = ResourceWorkload{ResourceID: r.ID}
	}

	for _, e := range events {
		if e.ResourceID == nil {
			continue
		}
		w, known := result[*e.ResourceID]
		if !known {
			continue // dangling reference, tolerated but not aggregated
		}
		if !e.Start.Before(winEnd) || !e.End.After(winStart) {
			continue
		}
		clippedStart := e.Start
		if clippedStart.Before(winStart) {
			clippedStart = winStart
		}
		clippedEnd := e.End
		if clippedEnd.After(winEnd) {
			clippedEnd = winEnd
		}
		w.Hours += clippedEnd.Sub(clippedStart).Hours()
		w.EventCount++
		result[*e.ResourceID] = w
	}

	for id, w := range result {
		percent := int(math.Round(w.Hours / capacity * 100))
		if !opts.AllowOvercommit && percent > 100 {
			percent = 100
		}
		w.Percent = percent
		result[id] = w
	}

	return result
}
