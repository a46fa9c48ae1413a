package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kamilarndt/fabmanage-api/internal/models"
	"github.com/kamilarndt/fabmanage-api/internal/repository"
	"github.com/kamilarndt/fabmanage-api/internal/schedule"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrWorkItemNotFound = errors.New("work item not found")
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidPriority  = errors.New("priority must be low, medium, high or urgent")
)

// ProjectService handles project and work item business logic
type ProjectService struct {
	projectRepo  repository.ProjectRepository
	workItemRepo repository.WorkItemRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, workItemRepo repository.WorkItemRepository) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		workItemRepo: workItemRepo,
	}
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Name      string
	Status    string
	Progress  int
	StartDate *time.Time
	Deadline  *time.Time
	Modules   []string
}

// CreateWorkItemInput represents input for creating a work item
type CreateWorkItemInput struct {
	Name          string
	Module        string
	Priority      models.WorkItemPriority
	Status        string
	EstimatedCost float64
	DueDate       *time.Time
	Dependencies  []string
}

// UpdateWorkItemInput represents input for updating a work item
type UpdateWorkItemInput struct {
	Name          *string
	Module        *string
	Priority      *models.WorkItemPriority
	Status        *string
	EstimatedCost *float64
	DueDate       *time.Time
	ClearDueDate  bool
	Dependencies  []string
}

// ListProjects returns all projects
func (s *ProjectService) ListProjects() ([]models.Project, error) {
	projects, err := s.projectRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProject returns a project with its work items
func (s *ProjectService) GetProject(id string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id, "WorkItems")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// CreateProject creates a new project with validation
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}

	project := &models.Project{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Status:    input.Status,
		Progress:  input.Progress,
		StartDate: input.StartDate,
		Deadline:  input.Deadline,
	}
	project.SetModuleNames(input.Modules)

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// ListWorkItems returns the work items of a project
func (s *ProjectService) ListWorkItems(projectID string) ([]models.WorkItem, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	items, err := s.workItemRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work items: %w", err)
	}
	return items, nil
}

// CreateWorkItem creates a new work item under a project
func (s *ProjectService) CreateWorkItem(projectID string, input CreateWorkItemInput) (*models.WorkItem, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}
	if !models.ValidWorkItemPriority(input.Priority) {
		return nil, ErrInvalidPriority
	}
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	item := &models.WorkItem{
		ID:            uuid.NewString(),
		ProjectID:     projectID,
		Name:          input.Name,
		Module:        input.Module,
		Priority:      input.Priority,
		Status:        input.Status,
		EstimatedCost: input.EstimatedCost,
		DueDate:       input.DueDate,
	}
	item.SetDependencyIDs(input.Dependencies)

	if err := s.workItemRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create work item: %w", err)
	}
	return item, nil
}

// UpdateWorkItem applies a partial update to a work item
func (s *ProjectService) UpdateWorkItem(id string, input UpdateWorkItemInput) (*models.WorkItem, error) {
	item, err := s.workItemRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkItemNotFound
		}
		return nil, fmt.Errorf("failed to find work item: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, ErrNameRequired
		}
		item.Name = *input.Name
	}
	if input.Module != nil {
		item.Module = *input.Module
	}
	if input.Priority != nil {
		if !models.ValidWorkItemPriority(*input.Priority) {
			return nil, ErrInvalidPriority
		}
		item.Priority = *input.Priority
	}
	if input.Status != nil {
		item.Status = *input.Status
	}
	if input.EstimatedCost != nil {
		item.EstimatedCost = *input.EstimatedCost
	}
	if input.ClearDueDate {
		item.DueDate = nil
	} else if input.DueDate != nil {
		item.DueDate = input.DueDate
	}
	if input.Dependencies != nil {
		item.SetDependencyIDs(input.Dependencies)
	}

	if err := s.workItemRepo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update work item: %w", err)
	}
	return item, nil
}

// DeleteWorkItem deletes a work item
func (s *ProjectService) DeleteWorkItem(id string) error {
	if _, err := s.workItemRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkItemNotFound
		}
		return fmt.Errorf("failed to find work item: %w", err)
	}

	if err := s.workItemRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete work item: %w", err)
	}
	return nil
}

// GanttTasks derives the three-level task tree of a project
func (s *ProjectService) GanttTasks(projectID string) ([]schedule.TaskNode, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	items, err := s.workItemRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work items: %w", err)
	}

	return schedule.DeriveTasks(project, items), nil
}
