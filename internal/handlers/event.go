package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kamilarndt/fabmanage-api/internal/dto"
	apierrors "github.com/kamilarndt/fabmanage-api/internal/errors"
	"github.com/kamilarndt/fabmanage-api/internal/middleware"
	"github.com/kamilarndt/fabmanage-api/internal/models"
	"github.com/kamilarndt/fabmanage-api/internal/repository"
	"github.com/kamilarndt/fabmanage-api/internal/schedule"
	"github.com/kamilarndt/fabmanage-api/internal/services"
	"github.com/kamilarndt/fabmanage-api/internal/utils"
)

type EventHandler struct {
	eventService    *services.EventService
	scheduleService *services.ScheduleService
}

func NewEventHandler(eventService *services.EventService, scheduleService *services.ScheduleService) *EventHandler {
	return &EventHandler{
		eventService:    eventService,
		scheduleService: scheduleService,
	}
}

// ListEvents returns events with optional filters. Conflict flags are
// computed over the whole event set, not just the returned page.
func (h *EventHandler) ListEvents(c *gin.Context) {
	filter := repository.EventFilter{}

	if raw := c.Query("resource_id"); raw != "" {
		filter.ResourceID = &raw
	}
	if raw := c.Query("project_id"); raw != "" {
		filter.ProjectID = &raw
	}
	if raw := c.Query("phase"); raw != "" {
		phase := models.EventPhase(raw)
		if !models.ValidEventPhase(phase) {
			apierrors.BadRequest(c, "Invalid phase")
			return
		}
		filter.Phase = &phase
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			apierrors.BadRequest(c, "Invalid from timestamp")
			return
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			apierrors.BadRequest(c, "Invalid to timestamp")
			return
		}
		filter.To = &to
	}

	params := utils.GetPaginationParams(c)
	filter.Page = params.Page
	filter.PageSize = params.Limit

	events, total, err := h.eventService.ListEvents(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch events")
		return
	}

	flags, err := h.scheduleService.ConflictFlags()
	if err != nil {
		apierrors.InternalError(c, "Failed to compute conflicts")
		return
	}

	dtos := make([]dto.EventDTO, len(events))
	for i, e := range events {
		dtos[i] = dto.ToEventDTO(e, flags[e.ID])
	}

	c.JSON(http.StatusOK, gin.H{
		"events": dtos,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetEvent returns a specific event by ID
// The event is already loaded by the RequireEvent middleware
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, ok := middleware.GetEvent(c)
	if !ok {
		apierrors.InternalError(c, "Event not found in context")
		return
	}

	flags, err := h.scheduleService.ConflictFlags()
	if err != nil {
		apierrors.InternalError(c, "Failed to compute conflicts")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDTO(event, flags[event.ID]))
}

// CreateEvent creates a new event
func (h *EventHandler) CreateEvent(c *gin.Context) {
	type CreateEventRequest struct {
		Title      string    `json:"title" binding:"required"`
		Start      time.Time `json:"start" binding:"required"`
		End        time.Time `json:"end" binding:"required"`
		AllDay     bool      `json:"all_day"`
		ResourceID *string   `json:"resource_id"`
		Phase      *string   `json:"phase"`
		TileID     *string   `json:"tile_id"`
		ProjectID  *string   `json:"project_id"`
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.CreateEventInput{
		Title:      req.Title,
		Start:      req.Start,
		End:        req.End,
		AllDay:     req.AllDay,
		ResourceID: req.ResourceID,
		TileID:     req.TileID,
		ProjectID:  req.ProjectID,
	}
	if req.Phase != nil {
		phase := models.EventPhase(*req.Phase)
		input.Phase = &phase
	}

	event, err := h.eventService.CreateEvent(input)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInterval):
			apierrors.InvalidInterval(c, "")
		case errors.Is(err, services.ErrTitleRequired), errors.Is(err, services.ErrInvalidPhase):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to create event")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventDTO(*event, false))
}

// UpdateEvent applies a partial update to an event
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	// Parse raw JSON so "resource_id": null can be told apart from an
	// absent field.
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateEventInput{}
	if value, ok := raw["title"]; ok {
		if s, ok := value.(string); ok {
			input.Title = &s
		}
	}
	if value, ok := raw["start"]; ok {
		t, err := parseTimeField(value)
		if err != nil {
			apierrors.BadRequest(c, "Invalid start timestamp")
			return
		}
		input.Start = t
	}
	if value, ok := raw["end"]; ok {
		t, err := parseTimeField(value)
		if err != nil {
			apierrors.BadRequest(c, "Invalid end timestamp")
			return
		}
		input.End = t
	}
	if value, ok := raw["all_day"]; ok {
		if b, ok := value.(bool); ok {
			input.AllDay = &b
		}
	}
	if value, ok := raw["resource_id"]; ok {
		if value == nil {
			input.ClearResource = true
		} else if s, ok := value.(string); ok {
			input.ResourceID = &s
		}
	}
	if value, ok := raw["phase"]; ok {
		if s, ok := value.(string); ok {
			phase := models.EventPhase(s)
			input.Phase = &phase
		}
	}
	if value, ok := raw["tile_id"]; ok {
		if s, ok := value.(string); ok {
			input.TileID = &s
		}
	}
	if value, ok := raw["project_id"]; ok {
		if s, ok := value.(string); ok {
			input.ProjectID = &s
		}
	}

	event, err := h.eventService.UpdateEvent(c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			apierrors.NotFound(c, "Event not found")
		case errors.Is(err, schedule.ErrInvalidInterval):
			apierrors.InvalidInterval(c, "")
		case errors.Is(err, services.ErrTitleRequired), errors.Is(err, services.ErrInvalidPhase):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to update event")
		}
		return
	}

	flags, err := h.scheduleService.ConflictFlags()
	if err != nil {
		apierrors.InternalError(c, "Failed to compute conflicts")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDTO(*event, flags[event.ID]))
}

// RescheduleEvent moves an event to a new interval, optionally onto another
// resource. Overlaps do not block the move; the response carries the
// refreshed conflict flag instead.
func (h *EventHandler) RescheduleEvent(c *gin.Context) {
	type RescheduleRequest struct {
		Start      time.Time `json:"start" binding:"required"`
		End        time.Time `json:"end" binding:"required"`
		ResourceID *string   `json:"resource_id"`
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	event, err := h.eventService.Reschedule(c.Param("id"), req.Start, req.End, req.ResourceID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInterval):
			apierrors.InvalidInterval(c, "")
		case errors.Is(err, services.ErrEventNotFound):
			apierrors.NotFound(c, "Event not found")
		default:
			apierrors.InternalError(c, "Failed to reschedule event")
		}
		return
	}

	flags, err := h.scheduleService.ConflictFlags()
	if err != nil {
		apierrors.InternalError(c, "Failed to compute conflicts")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDTO(*event, flags[event.ID]))
}

// DeleteEvent deletes an event
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.eventService.DeleteEvent(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			apierrors.NotFound(c, "Event not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete event")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// parseTimeField reads an RFC3339 timestamp out of a raw JSON value.
func parseTimeField(value any) (*time.Time, error) {
	s, ok := value.(string)
	if !ok {
		return nil, errors.New("not a string")
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
