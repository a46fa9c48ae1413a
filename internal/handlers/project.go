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
	"github.com/kamilarndt/fabmanage-api/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects returns all projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": dto.ToProjectDTOs(projects)})
}

// GetProject returns a specific project by ID
// The project is already loaded by the RequireProject middleware
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(project))
}

// CreateProject creates a new project
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	type CreateProjectRequest struct {
		Name      string     `json:"name" binding:"required"`
		Status    string     `json:"status"`
		Progress  int        `json:"progress"`
		StartDate *time.Time `json:"start_date"`
		Deadline  *time.Time `json:"deadline"`
		Modules   []string   `json:"modules"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		Name:      req.Name,
		Status:    req.Status,
		Progress:  req.Progress,
		StartDate: req.StartDate,
		Deadline:  req.Deadline,
		Modules:   req.Modules,
	})
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// ListWorkItems returns the work items of a project
func (h *ProjectHandler) ListWorkItems(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	items, err := h.projectService.ListWorkItems(project.ID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apierrors.NotFound(c, "Project not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch work items")
		return
	}

	c.JSON(http.StatusOK, gin.H{"work_items": dto.ToWorkItemDTOs(items)})
}

// CreateWorkItem creates a new work item under a project
func (h *ProjectHandler) CreateWorkItem(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	type CreateWorkItemRequest struct {
		Name          string     `json:"name" binding:"required"`
		Module        string     `json:"module"`
		Priority      string     `json:"priority"`
		Status        string     `json:"status"`
		EstimatedCost float64    `json:"estimated_cost"`
		DueDate       *time.Time `json:"due_date"`
		Dependencies  []string   `json:"dependencies"`
	}

	var req CreateWorkItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.projectService.CreateWorkItem(project.ID, services.CreateWorkItemInput{
		Name:          req.Name,
		Module:        req.Module,
		Priority:      models.WorkItemPriority(req.Priority),
		Status:        req.Status,
		EstimatedCost: req.EstimatedCost,
		DueDate:       req.DueDate,
		Dependencies:  req.Dependencies,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			apierrors.NotFound(c, "Project not found")
		case errors.Is(err, services.ErrNameRequired), errors.Is(err, services.ErrInvalidPriority):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to create work item")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkItemDTO(*item))
}

// UpdateWorkItem applies a partial update to a work item
func (h *ProjectHandler) UpdateWorkItem(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateWorkItemInput{}
	if value, ok := raw["name"]; ok {
		if s, ok := value.(string); ok {
			input.Name = &s
		}
	}
	if value, ok := raw["module"]; ok {
		if s, ok := value.(string); ok {
			input.Module = &s
		}
	}
	if value, ok := raw["priority"]; ok {
		if s, ok := value.(string); ok {
			priority := models.WorkItemPriority(s)
			input.Priority = &priority
		}
	}
	if value, ok := raw["status"]; ok {
		if s, ok := value.(string); ok {
			input.Status = &s
		}
	}
	if value, ok := raw["estimated_cost"]; ok {
		if f, ok := value.(float64); ok {
			input.EstimatedCost = &f
		}
	}
	if value, ok := raw["due_date"]; ok {
		if value == nil {
			input.ClearDueDate = true
		} else if s, ok := value.(string); ok {
			parsed, err := time.Parse(time.RFC3339, s)
			if err != nil {
				apierrors.BadRequest(c, "Invalid due_date timestamp")
				return
			}
			input.DueDate = &parsed
		}
	}
	if value, ok := raw["dependencies"]; ok {
		if list, ok := value.([]any); ok {
			deps := make([]string, 0, len(list))
			for _, entry := range list {
				if s, ok := entry.(string); ok {
					deps = append(deps, s)
				}
			}
			input.Dependencies = deps
		}
	}

	item, err := h.projectService.UpdateWorkItem(c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWorkItemNotFound):
			apierrors.NotFound(c, "Work item not found")
		case errors.Is(err, services.ErrNameRequired), errors.Is(err, services.ErrInvalidPriority):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to update work item")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkItemDTO(*item))
}

// DeleteWorkItem deletes a work item
func (h *ProjectHandler) DeleteWorkItem(c *gin.Context) {
	if err := h.projectService.DeleteWorkItem(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrWorkItemNotFound) {
			apierrors.NotFound(c, "Work item not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete work item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Work item deleted successfully"})
}

// GetGantt derives the three-level task tree of a project for Gantt display.
// The tree is recomputed on every call and never persisted.
func (h *ProjectHandler) GetGantt(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	tasks, err := h.projectService.GanttTasks(project.ID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apierrors.NotFound(c, "Project not found")
			return
		}
		apierrors.InternalError(c, "Failed to derive tasks")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}
