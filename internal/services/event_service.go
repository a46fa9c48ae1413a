package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kamilarndt/fabmanage-api/internal/models"
	"github.com/kamilarndt/fabmanage-api/internal/repository"
	"github.com/kamilarndt/fabmanage-api/internal/schedule"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrInvalidPhase  = errors.New("phase must be design, cutting or production")
)

// EventService handles event business logic
type EventService struct {
	eventRepo repository.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// CreateEventInput represents input for creating an event
type CreateEventInput struct {
	Title      string
	Start      time.Time
	End        time.Time
	AllDay     bool
	ResourceID *string
	Phase      *models.EventPhase
	TileID     *string
	ProjectID  *string
}

// UpdateEventInput represents input for updating an event. Nil fields are
// left untouched; ClearResource detaches the event from its resource.
type UpdateEventInput struct {
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

// ListEvents returns events matching the filter
func (s *EventService) ListEvents(filter repository.EventFilter) ([]models.Event, int64, error) {
	events, total, err := s.eventRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	return events, total, nil
}

// GetEvent returns a single event
func (s *EventService) GetEvent(id string) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	return event, nil
}

// CreateEvent creates a new event with validation. Overlaps with existing
// events are allowed; conflicts surface as annotations on reads.
func (s *EventService) CreateEvent(input CreateEventInput) (*models.Event, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if err := schedule.ValidateInterval(input.Start, input.End); err != nil {
		return nil, err
	}
	if input.Phase != nil && !models.ValidEventPhase(*input.Phase) {
		return nil, ErrInvalidPhase
	}

	event := &models.Event{
		Title:      input.Title,
		Start:      input.Start,
		End:        input.End,
		AllDay:     input.AllDay,
		ResourceID: input.ResourceID,
		Phase:      input.Phase,
		TileID:     input.TileID,
		ProjectID:  input.ProjectID,
	}
	if err := s.eventRepo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

// UpdateEvent applies a partial update to an event
func (s *EventService) UpdateEvent(id string, input UpdateEventInput) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleRequired
		}
		event.Title = *input.Title
	}
	start := event.Start
	end := event.End
	if input.Start != nil {
		start = *input.Start
	}
	if input.End != nil {
		end = *input.End
	}
	if err := schedule.ValidateInterval(start, end); err != nil {
		return nil, err
	}
	event.Start = start
	event.End = end

	if input.AllDay != nil {
		event.AllDay = *input.AllDay
	}
	if input.ClearResource {
		event.ResourceID = nil
	} else if input.ResourceID != nil {
		event.ResourceID = input.ResourceID
	}
	if input.Phase != nil {
		if !models.ValidEventPhase(*input.Phase) {
			return nil, ErrInvalidPhase
		}
		event.Phase = input.Phase
	}
	if input.TileID != nil {
		event.TileID = input.TileID
	}
	if input.ProjectID != nil {
		event.ProjectID = input.ProjectID
	}

	if err := s.eventRepo.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

// Reschedule moves an event to a new interval, optionally onto another
// resource. The move is accepted even when it overlaps other events.
func (s *EventService) Reschedule(id string, start, end time.Time, resourceID *string) (*models.Event, error) {
	if err := schedule.ValidateInterval(start, end); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}

	event.Start = start
	event.End = end
	if resourceID != nil {
		event.ResourceID = resourceID
	}

	if err := s.eventRepo.Update(event); err != nil {
		return nil, fmt.Errorf("failed to reschedule event: %w", err)
	}
	return event, nil
}

// DeleteEvent deletes an event
func (s *EventService) DeleteEvent(id string) error {
	if _, err := s.eventRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to find event: %w", err)
	}

	if err := s.eventRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
