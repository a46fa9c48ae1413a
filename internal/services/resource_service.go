package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kamilarndt/fabmanage-api/internal/models"
	"github.com/kamilarndt/fabmanage-api/internal/repository"
)

var (
	ErrResourceNotFound  = errors.New("resource not found")
	ErrTitleRequired     = errors.New("title is required")
	ErrInvalidCategory   = errors.New("category must be designer, team or project")
	ErrResourceIDMissing = errors.New("resource id is required")
)

// ResourceService handles resource business logic
type ResourceService struct {
	resourceRepo repository.ResourceRepository
}

// NewResourceService creates a new ResourceService
func NewResourceService(resourceRepo repository.ResourceRepository) *ResourceService {
	return &ResourceService{resourceRepo: resourceRepo}
}

// CreateResourceInput represents input for creating a resource
type CreateResourceInput struct {
	ID       string
	Title    string
	Color    string
	Category models.ResourceCategory
}

// UpdateResourceInput represents input for updating a resource
type UpdateResourceInput struct {
	Title    *string
	Color    *string
	Category *models.ResourceCategory
}

// ListResources returns resources, optionally narrowed to one category
func (s *ResourceService) ListResources(category *models.ResourceCategory) ([]models.Resource, error) {
	if category != nil && !models.ValidResourceCategory(*category) {
		return nil, ErrInvalidCategory
	}

	resources, err := s.resourceRepo.List(category)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	return resources, nil
}

// GetResource returns a single resource
func (s *ResourceService) GetResource(id string) (*models.Resource, error) {
	resource, err := s.resourceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("failed to find resource: %w", err)
	}
	return resource, nil
}

// CreateResource creates a new resource with validation
func (s *ResourceService) CreateResource(input CreateResourceInput) (*models.Resource, error) {
	if input.ID == "" {
		return nil, ErrResourceIDMissing
	}
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if !models.ValidResourceCategory(input.Category) {
		return nil, ErrInvalidCategory
	}

	resource := &models.Resource{
		ID:       input.ID,
		Title:    input.Title,
		Color:    input.Color,
		Category: input.Category,
	}
	if err := s.resourceRepo.Create(resource); err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return resource, nil
}

// UpdateResource updates an existing resource
func (s *ResourceService) UpdateResource(id string, input UpdateResourceInput) (*models.Resource, error) {
	resource, err := s.resourceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("failed to find resource: %w", err)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleRequired
		}
		resource.Title = *input.Title
	}
	if input.Color != nil {
		resource.Color = *input.Color
	}
	if input.Category != nil {
		if !models.ValidResourceCategory(*input.Category) {
			return nil, ErrInvalidCategory
		}
		resource.Category = *input.Category
	}

	if err := s.resourceRepo.Update(resource); err != nil {
		return nil, fmt.Errorf("failed to update resource: %w", err)
	}
	return resource, nil
}

// DeleteResource soft deletes a resource. Events pointing at it become
// dangling and drop out of resource-scoped views.
func (s *ResourceService) DeleteResource(id string) error {
	if _, err := s.resourceRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResourceNotFound
		}
		return fmt.Errorf("failed to find resource: %w", err)
	}

	if err := s.resourceRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}
	return nil
}
