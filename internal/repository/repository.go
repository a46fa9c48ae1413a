package repository

import (
	"time"

	"github.com/kamilarndt/fabmanage-api/internal/models"
)

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create creates a new event
	Create(event *models.Event) error

	// FindByID finds an event by ID
	FindByID(id string) (*models.Event, error)

	// List retrieves events with filtering and pagination
	List(filter EventFilter) ([]models.Event, int64, error)

	// ListAll retrieves every event without pagination, for snapshot loads
	ListAll() ([]models.Event, error)

	// Update updates an event
	Update(event *models.Event) error

	// Delete soft deletes an event
	Delete(id string) error
}

// EventFilter holds filtering options for listing events
type EventFilter struct {
	ResourceID *string
	ProjectID  *string
	Phase      *models.EventPhase
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
}

// ResourceRepository defines the interface for resource data access
type ResourceRepository interface {
	// Create creates a new resource
	Create(resource *models.Resource) error

	// FindByID finds a resource by ID
	FindByID(id string) (*models.Resource, error)

	// List retrieves resources, optionally narrowed to one category
	List(category *models.ResourceCategory) ([]models.Resource, error)

	// Update updates a resource
	Update(resource *models.Resource) error

	// Delete soft deletes a resource. Events referencing it are left in
	// place with a dangling resource id.
	Delete(id string) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID with optional preloading
	FindByID(id string, preload ...string) (*models.Project, error)

	// List retrieves all projects
	List() ([]models.Project, error)

	// Update updates a project
	Update(project *models.Project) error

	// Delete soft deletes a project
	Delete(id string) error
}

// WorkItemRepository defines the interface for work item data access
type WorkItemRepository interface {
	// Create creates a new work item
	Create(item *models.WorkItem) error

	// FindByID finds a work item by ID
	FindByID(id string) (*models.WorkItem, error)

	// ListByProject retrieves the work items of one project
	ListByProject(projectID string) ([]models.WorkItem, error)

	// Update updates a work item
	Update(item *models.WorkItem) error

	// Delete soft deletes a work item
	Delete(id string) error
}
