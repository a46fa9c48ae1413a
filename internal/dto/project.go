package dto

import (
	"time"

	"github.com/kamilarndt/fabmanage-api/internal/models"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Status    string        `json:"status"`
	Progress  int           `json:"progress"`
	StartDate *time.Time    `json:"start_date"`
	Deadline  *time.Time    `json:"deadline"`
	Modules   []string      `json:"modules"`
	WorkItems []WorkItemDTO `json:"work_items,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// WorkItemDTO represents a work item in API responses
type WorkItemDTO struct {
	ID            string                  `json:"id"`
	ProjectID     string                  `json:"project_id"`
	Name          string                  `json:"name"`
	Module        string                  `json:"module,omitempty"`
	Priority      models.WorkItemPriority `json:"priority"`
	Status        string                  `json:"status"`
	EstimatedCost float64                 `json:"estimated_cost"`
	DueDate       *time.Time              `json:"due_date"`
	Dependencies  []string                `json:"dependencies"`
	CreatedAt     time.Time               `json:"created_at"`
}

// ToWorkItemDTO converts a WorkItem model to WorkItemDTO
func ToWorkItemDTO(item models.WorkItem) WorkItemDTO {
	return WorkItemDTO{
		ID:            item.ID,
		ProjectID:     item.ProjectID,
		Name:          item.Name,
		Module:        item.Module,
		Priority:      item.Priority,
		Status:        item.Status,
		EstimatedCost: item.EstimatedCost,
		DueDate:       item.DueDate,
		Dependencies:  item.DependencyIDs(),
		CreatedAt:     item.CreatedAt,
	}
}

// ToWorkItemDTOs converts a slice of WorkItem models
func ToWorkItemDTOs(items []models.WorkItem) []WorkItemDTO {
	dtos := make([]WorkItemDTO, len(items))
	for i, item := range items {
		dtos[i] = ToWorkItemDTO(item)
	}
	return dtos
}

// ToProjectDTO converts a Project model to ProjectDTO. Work items are
// included only when preloaded on the model.
func ToProjectDTO(project models.Project) ProjectDTO {
	dto := ProjectDTO{
		ID:        project.ID,
		Name:      project.Name,
		Status:    project.Status,
		Progress:  project.Progress,
		StartDate: project.StartDate,
		Deadline:  project.Deadline,
		Modules:   project.ModuleNames(),
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	}
	if len(project.WorkItems) > 0 {
		dto.WorkItems = ToWorkItemDTOs(project.WorkItems)
	}
	return dto
}

// ToProjectDTOs converts a slice of Project models
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ToProjectDTO(p)
	}
	return dtos
}
