package schedule

import (
	"time"

	"github.com/google/uuid"
	"github.com/kamilarndt/fabmanage-api/internal/models"
)

// Store holds the in-memory snapshot of resources and events that the
// read-side computations (conflicts, workload, lanes) run against. It is a
// plain container: interval validation belongs to Reschedule and to callers
// constructing drafts, never to the store itself. The store is not safe for
// concurrent use; callers serialize mutations.
type Store struct {
	resources []models.Resource
	events    []models.Event
}

func NewStore() *Store {
	return &Store{}
}

// SetResources replaces the resource collection.
func (s *Store) SetResources(resources []models.Resource) {
	s.resources = make([]models.Resource, len(resources))
	copy(s.resources, resources)
}

// SetEvents replaces the event collection.
func (s *Store) SetEvents(events []models.Event) {
	s.events = make([]models.Event, len(events))
	copy(s.events, events)
}

// Resources returns a copy of the current resource collection.
func (s *Store) Resources() []models.Resource {
	out := make([]models.Resource, len(s.resources))
	copy(out, s.resources)
	return out
}

// Events returns a copy of the current event collection.
func (s *Store) Events() []models.Event {
	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

// FindEvent returns the event with the given id.
func (s *Store) FindEvent(id string) (models.Event, bool) {
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}

// CreateEvent adds a new event from the draft, assigning a fresh id.
func (s *Store) CreateEvent(draft models.Event) models.Event {
	draft.ID = uuid.NewString()
	s.events = append(s.events, draft)
	return draft
}

// EventPatch holds the fields of an event that can be overwritten in place.
// Nil fields are left untouched; ClearResource detaches the event from its
// resource.
type EventPatch struct {
	Title         *string
	Start         *time.Time
	End           *time.Time
	AllDay        *bool
	ResourceID    *string
	ClearResource bool
	Phase         *models.EventPhase
	TileID        *string
	ProjectID     *string
}

// UpdateEvent applies a shallow field overwrite to the event with the given
// id. It reports whether the event was found.
func (s *Store) UpdateEvent(id string, patch EventPatch) bool {
	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}
		e := &s.events[i]
		if patch.Title != nil {
			e.Title = *patch.Title
		}
		if patch.Start != nil {
			e.Start = *patch.Start
		}
		if patch.End != nil {
			e.End = *patch.End
		}
		if patch.AllDay != nil {
			e.AllDay = *patch.AllDay
		}
		if patch.ClearResource {
			e.ResourceID = nil
		} else if patch.ResourceID != nil {
			e.ResourceID = patch.ResourceID
		}
		if patch.Phase != nil {
			e.Phase = patch.Phase
		}
		if patch.TileID != nil {
			e.TileID = patch.TileID
		}
		if patch.ProjectID != nil {
			e.ProjectID = patch.ProjectID
		}
		return true
	}
	return false
}

// UpdateEventTimes overwrites an event's temporal fields and, when resourceID
// is non-nil, its resource assignment. No validation is performed here.
func (s *Store) UpdateEventTimes(id string, start, end time.Time, resourceID *string) bool {
	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}
		s.events[i].Start = start
		s.events[i].End = end
		if resourceID != nil {
			s.events[i].ResourceID = resourceID
		}
		return true
	}
	return false
}

// DeleteEvent removes the event with the given id. It reports whether the
// event was found.
func (s *Store) DeleteEvent(id string) bool {
	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return true
		}
	}
	return false
}
