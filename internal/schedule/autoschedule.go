package schedule

import (
	"time"

	"github.com/kamilarndt/fabmanage-api/internal/models"
)

// TaskDraft is one unit of work to place on a resource's calendar.
type TaskDraft struct {
	Title         string
	DurationHours float64
	Phase         *models.EventPhase
	TileID        *string
	ProjectID     *string
}

// AutoScheduleOptions configures first-fit placement. Zero values fall back
// to a 09:00-17:00 workday with 30-minute slots starting from Now (or
// time.Now when unset).
type AutoScheduleOptions struct {
	ResourceID  string
	DayStart    string // "HH:MM"
	DayEnd      string // "HH:MM"
	SlotMinutes int
	Now         time.Time
}

// AutoSchedule places the drafts on the resource's calendar greedily: each
// draft is split into slot-sized blocks dropped into the earliest free
// intervals within working hours, spilling into following days as needed.
// Created events are appended to the store and returned. This is first-fit
// placement, not optimization; it only avoids the conflicts it would
// otherwise create.
func (s *Store) AutoSchedule(opts AutoScheduleOptions, drafts []TaskDraft) []models.Event {
	startHour, startMin := parseClock(opts.DayStart, 9, 0)
	endHour, endMin := parseClock(opts.DayEnd, 17, 0)
	slot := time.Duration(opts.SlotMinutes) * time.Minute
	if slot <= 0 {
		slot = 30 * time.Minute
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	cursor := time.Date(now.Year(), now.Month(), now.Day(), startHour, startMin, 0, 0, now.Location())
	endOfDay := func(d time.Time) time.Time {
		return time.Date(d.Year(), d.Month(), d.Day(), endHour, endMin, 0, 0, d.Location())
	}
	nextMorning := func(d time.Time) time.Time {
		return time.Date(d.Year(), d.Month(), d.Day()+1, startHour, startMin, 0, 0, d.Location())
	}

	var created []models.Event
	for _, draft := range drafts {
		remaining := time.Duration(draft.DurationHours * float64(time.Hour))
		for remaining > 0 {
			if cursor.After(endOfDay(cursor)) {
				cursor = nextMorning(cursor)
			}
			block := slot
			if remaining < block {
				block = remaining
			}
			slotEnd := cursor.Add(block)
			if slotEnd.After(endOfDay(cursor)) {
				cursor = nextMorning(cursor)
				continue
			}
			if !s.resourceFree(opts.ResourceID, cursor, slotEnd) {
				cursor = cursor.Add(slot)
				continue
			}
			event := s.CreateEvent(models.Event{
				Title:      draft.Title,
				Start:      cursor,
				End:        slotEnd,
				ResourceID: &opts.ResourceID,
				Phase:      draft.Phase,
				TileID:     draft.TileID,
				ProjectID:  draft.ProjectID,
			})
			created = append(created, event)
			remaining -= block
			cursor = slotEnd
		}
	}
	return created
}

// resourceFree reports whether the resource has no event overlapping
// [start, end).
func (s *Store) resourceFree(resourceID string, start, end time.Time) bool {
	for _, e := range s.events {
		if e.ResourceID == nil || *e.ResourceID != resourceID {
			continue
		}
		if e.Start.Before(end) && e.End.After(start) {
			return false
		}
	}
	return true
}

func parseClock(clock string, defHour, defMin int) (int, int) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return defHour, defMin
	}
	return t.Hour(), t.Minute()
}
