package schedule

import (
	"errors"
	"time"

	"github.com/kamilarndt/fabmanage-api/internal/models"
)

var (
	ErrInvalidInterval = errors.New("event must start before it ends")
	ErrEventNotFound   = errors.New("event not found")
)

// Reschedule applies a drag or resize gesture to one event: it overwrites the
// event's start and end and, when resourceID is non-nil, its resource
// assignment, leaving every other field untouched. A failed call leaves the
// store unchanged. Conflicts are never grounds for rejection; callers re-run
// MarkConflicts afterwards and surface the result for human review.
func (s *Store) Reschedule(id string, start, end time.Time, resourceID *string) (models.Event, error) {
	if !start.Before(end) {
		return models.Event{}, ErrInvalidInterval
	}
	if !s.UpdateEventTimes(id, start, end, resourceID) {
		return models.Event{}, ErrEventNotFound
	}
	updated, _ := s.FindEvent(id)
	return updated, nil
}

// ValidateInterval checks the start < end invariant shared by event creation
// paths and Reschedule.
func ValidateInterval(start, end time.Time) error {
	if !start.Before(end) {
		return ErrInvalidInterval
	}
	return nil
}
