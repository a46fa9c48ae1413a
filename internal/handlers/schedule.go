package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kamilarndt/fabmanage-api/internal/dto"
	apierrors "github.com/kamilarndt/fabmanage-api/internal/errors"
	"github.com/kamilarndt/fabmanage-api/internal/models"
	"github.com/kamilarndt/fabmanage-api/internal/schedule"
	"github.com/kamilarndt/fabmanage-api/internal/services"
)

type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

func NewScheduleHandler(scheduleService *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// GetConflicts returns every event annotated with its conflict flag, plus
// the ids of resources carrying at least one overlap. A resource_id query
// narrows the returned events; flags are still computed over the full set.
func (h *ScheduleHandler) GetConflicts(c *gin.Context) {
	annotated, err := h.scheduleService.AnnotatedEvents()
	if err != nil {
		apierrors.InternalError(c, "Failed to compute conflicts")
		return
	}

	if resourceID := c.Query("resource_id"); resourceID != "" {
		scoped := annotated[:0:0]
		for _, e := range annotated {
			if e.ResourceID != nil && *e.ResourceID == resourceID {
				scoped = append(scoped, e)
			}
		}
		annotated = scoped
	}

	conflicted, err := h.scheduleService.ConflictedResources()
	if err != nil {
		apierrors.InternalError(c, "Failed to compute conflicts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":               dto.ToAnnotatedEventDTOs(annotated),
		"conflicted_resources": conflicted,
	})
}

// GetWorkload returns per-resource booked hours for the calendar week
// containing the "week" timestamp (default: now)
func (h *ScheduleHandler) GetWorkload(c *gin.Context) {
	at := time.Now()
	if raw := c.Query("week"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			apierrors.BadRequest(c, "Invalid week timestamp")
			return
		}
		at = parsed
	}

	workload, winStart, winEnd, err := h.scheduleService.Workload(at)
	if err != nil {
		apierrors.InternalError(c, "Failed to compute workload")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"week_start": winStart,
		"week_end":   winEnd,
		"workload":   workload,
	})
}

// GetLanes partitions all events into presentation lanes along the chosen
// dimension (default: resource)
func (h *ScheduleHandler) GetLanes(c *gin.Context) {
	dim := schedule.LaneDimension(c.DefaultQuery("dimension", string(schedule.LaneByResource)))
	category := models.ResourceCategory(c.Query("category"))

	lanes, err := h.scheduleService.Lanes(dim, category)
	if err != nil {
		if errors.Is(err, services.ErrInvalidLaneDimension) || errors.Is(err, services.ErrInvalidCategory) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to compute lanes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"lanes": lanes})
}

// ExportWeek renders one calendar week as plain text. The week query names
// any day of the wanted week and defaults to the current one.
func (h *ScheduleHandler) ExportWeek(c *gin.Context) {
	at := time.Now()
	if raw := c.Query("week"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			apierrors.BadRequest(c, "Invalid week date")
			return
		}
		at = parsed
	}
	weekStart, _ := schedule.WeekWindow(at)

	text, err := h.scheduleService.ExportWeek(weekStart, c.Query("resource_id"))
	if err != nil {
		apierrors.InternalError(c, "Failed to export week")
		return
	}

	c.String(http.StatusOK, text)
}

// AutoSchedule places a batch of task drafts on one resource's calendar and
// persists the resulting events
func (h *ScheduleHandler) AutoSchedule(c *gin.Context) {
	type TaskDraftRequest struct {
		Title         string  `json:"title" binding:"required"`
		DurationHours float64 `json:"duration_hours" binding:"required"`
		Phase         *string `json:"phase"`
		TileID        *string `json:"tile_id"`
		ProjectID     *string `json:"project_id"`
	}
	type AutoScheduleRequest struct {
		ResourceID string             `json:"resource_id" binding:"required"`
		From       *time.Time         `json:"from"`
		Tasks      []TaskDraftRequest `json:"tasks" binding:"required"`
	}

	var req AutoScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	drafts := make([]schedule.TaskDraft, len(req.Tasks))
	for i, t := range req.Tasks {
		draft := schedule.TaskDraft{
			Title:         t.Title,
			DurationHours: t.DurationHours,
			TileID:        t.TileID,
			ProjectID:     t.ProjectID,
		}
		if t.Phase != nil {
			phase := models.EventPhase(*t.Phase)
			if !models.ValidEventPhase(phase) {
				apierrors.BadRequest(c, "Invalid phase")
				return
			}
			draft.Phase = &phase
		}
		drafts[i] = draft
	}

	input := services.AutoScheduleInput{
		ResourceID: req.ResourceID,
		Drafts:     drafts,
	}
	if req.From != nil {
		input.From = *req.From
	}

	created, err := h.scheduleService.AutoSchedule(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrResourceNotFound):
			apierrors.NotFound(c, "Resource not found")
		case errors.Is(err, services.ErrNoDrafts):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to schedule tasks")
		}
		return
	}

	dtos := make([]dto.EventDTO, len(created))
	for i, e := range created {
		dtos[i] = dto.ToEventDTO(e, false)
	}
	c.JSON(http.StatusCreated, gin.H{"events": dtos})
}
