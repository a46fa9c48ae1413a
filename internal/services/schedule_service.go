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
	ErrInvalidLaneDimension = errors.New("dimension must be resource, category or project")
	ErrNoDrafts             = errors.New("at least one task is required")
)

// ScheduleOptions carries the tunables of the derived views. Zero values
// fall back to a 40-hour week with a 09:00-17:00 workday and 30-minute slots.
type ScheduleOptions struct {
	CapacityHours   float64
	AllowOvercommit bool
	WorkdayStart    string
	WorkdayEnd      string
	SlotMinutes     int
}

// ScheduleService computes the derived calendar views. Every call loads a
// fresh snapshot of events and resources, so the views always reflect the
// persisted state.
type ScheduleService struct {
	eventRepo    repository.EventRepository
	resourceRepo repository.ResourceRepository
	opts         ScheduleOptions
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(eventRepo repository.EventRepository, resourceRepo repository.ResourceRepository, opts ScheduleOptions) *ScheduleService {
	return &ScheduleService{
		eventRepo:    eventRepo,
		resourceRepo: resourceRepo,
		opts:         opts,
	}
}

// snapshot loads all events and resources into an in-memory store.
func (s *ScheduleService) snapshot() (*schedule.Store, error) {
	events, err := s.eventRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	resources, err := s.resourceRepo.List(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load resources: %w", err)
	}

	store := schedule.NewStore()
	store.SetEvents(events)
	store.SetResources(resources)
	return store, nil
}

// AnnotatedEvents returns every event with its conflict flag set
func (s *ScheduleService) AnnotatedEvents() ([]schedule.AnnotatedEvent, error) {
	store, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return schedule.MarkConflicts(store.Events()), nil
}

// ConflictFlags returns the conflict flag of every event, keyed by event id.
// Flags are computed over the whole event set so paginated reads stay honest.
func (s *ScheduleService) ConflictFlags() (map[string]bool, error) {
	annotated, err := s.AnnotatedEvents()
	if err != nil {
		return nil, err
	}
	flags := make(map[string]bool, len(annotated))
	for _, e := range annotated {
		flags[e.ID] = e.Conflict
	}
	return flags, nil
}

// ConflictedResources returns the ids of resources with overlapping events
func (s *ScheduleService) ConflictedResources() ([]string, error) {
	store, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return schedule.ResourcesWithConflicts(store.Events()), nil
}

// Workload computes per-resource booked hours for the calendar week
// containing at. It returns the computed window alongside the totals.
func (s *ScheduleService) Workload(at time.Time) (map[string]schedule.ResourceWorkload, time.Time, time.Time, error) {
	store, err := s.snapshot()
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}

	winStart, winEnd := schedule.WeekWindow(at)
	workload := schedule.ComputeWorkload(store.Events(), store.Resources(), winStart, winEnd, schedule.WorkloadOptions{
		CapacityHours:   s.opts.CapacityHours,
		AllowOvercommit: s.opts.AllowOvercommit,
	})
	return workload, winStart, winEnd, nil
}

// Lanes partitions all events along the chosen dimension
func (s *ScheduleService) Lanes(dim schedule.LaneDimension, category models.ResourceCategory) ([]schedule.Lane, error) {
	switch dim {
	case schedule.LaneByResource, schedule.LaneByCategory, schedule.LaneByProject:
	default:
		return nil, ErrInvalidLaneDimension
	}
	if category != "" && !models.ValidResourceCategory(category) {
		return nil, ErrInvalidCategory
	}

	store, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return schedule.GroupIntoLanes(store.Events(), store.Resources(), dim, category), nil
}

// ExportWeek renders the plain-text summary of one calendar week
func (s *ScheduleService) ExportWeek(weekStart time.Time, resourceID string) (string, error) {
	store, err := s.snapshot()
	if err != nil {
		return "", err
	}
	return schedule.ExportWeek(store.Events(), store.Resources(), weekStart, resourceID), nil
}

// AutoScheduleInput represents input for first-fit placement
type AutoScheduleInput struct {
	ResourceID string
	From       time.Time
	Drafts     []schedule.TaskDraft
}

// AutoSchedule places the drafts on the resource's calendar and persists the
// resulting events. Placement avoids existing bookings on that resource.
func (s *ScheduleService) AutoSchedule(input AutoScheduleInput) ([]models.Event, error) {
	if len(input.Drafts) == 0 {
		return nil, ErrNoDrafts
	}
	if _, err := s.resourceRepo.FindByID(input.ResourceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("failed to find resource: %w", err)
	}

	store, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	created := store.AutoSchedule(schedule.AutoScheduleOptions{
		ResourceID:  input.ResourceID,
		DayStart:    s.opts.WorkdayStart,
		DayEnd:      s.opts.WorkdayEnd,
		SlotMinutes: s.opts.SlotMinutes,
		Now:         input.From,
	}, input.Drafts)

	for i := range created {
		if err := s.eventRepo.Create(&created[i]); err != nil {
			return nil, fmt.Errorf("failed to persist scheduled event: %w", err)
		}
	}
	return created, nil
}
