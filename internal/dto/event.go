package dto

import (
	"time"

	"github.com/kamilarndt/fabmanage-api/internal/models"
	"github.com/kamilarndt/fabmanage-api/internal/schedule"
)

// ResourceDTO represents a resource in API responses
type ResourceDTO struct {
	ID       string                  `json:"id"`
	Title    string                  `json:"title"`
	Color    string                  `json:"color,omitempty"`
	Category models.ResourceCategory `json:"category"`
}

// EventDTO represents an event in API responses. Conflict is advisory: it
// reflects overlaps at read time and never blocks a write.
type EventDTO struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Start      time.Time          `json:"start"`
	End        time.Time          `json:"end"`
	AllDay     bool               `json:"all_day"`
	ResourceID *string            `json:"resource_id"`
	Phase      *models.EventPhase `json:"phase"`
	TileID     *string            `json:"tile_id"`
	ProjectID  *string            `json:"project_id"`
	Conflict   bool               `json:"conflict"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// EventListResponse represents a paginated list of events
type EventListResponse struct {
	Events     []EventDTO `json:"events"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalCount int64      `json:"total_count"`
	TotalPages int        `json:"total_pages"`
}

// Conversion functions

// ToResourceDTO converts a Resource model to ResourceDTO
func ToResourceDTO(resource models.Resource) ResourceDTO {
	return ResourceDTO{
		ID:       resource.ID,
		Title:    resource.Title,
		Color:    resource.Color,
		Category: resource.Category,
	}
}

// ToResourceDTOs converts a slice of Resource models
func ToResourceDTOs(resources []models.Resource) []ResourceDTO {
	dtos := make([]ResourceDTO, len(resources))
	for i, r := range resources {
		dtos[i] = ToResourceDTO(r)
	}
	return dtos
}

// ToEventDTO converts an Event model to EventDTO
func ToEventDTO(event models.Event, conflict bool) EventDTO {
	return EventDTO{
		ID:         event.ID,
		Title:      event.Title,
		Start:      event.Start,
		End:        event.End,
		AllDay:     event.AllDay,
		ResourceID: event.ResourceID,
		Phase:      event.Phase,
		TileID:     event.TileID,
		ProjectID:  event.ProjectID,
		Conflict:   conflict,
		CreatedAt:  event.CreatedAt,
		UpdatedAt:  event.UpdatedAt,
	}
}

// ToAnnotatedEventDTO converts a conflict-annotated event to EventDTO
func ToAnnotatedEventDTO(event schedule.AnnotatedEvent) EventDTO {
	return ToEventDTO(event.Event, event.Conflict)
}

// ToAnnotatedEventDTOs converts a slice of conflict-annotated events
func ToAnnotatedEventDTOs(events []schedule.AnnotatedEvent) []EventDTO {
	dtos := make([]EventDTO, len(events))
	for i, e := range events {
		dtos[i] = ToAnnotatedEventDTO(e)
	}
	return dtos
}
