package repository

import (
	"github.com/kamilarndt/fabmanage-api/internal/models"
	"gorm.io/gorm"
)

// GormWorkItemRepository is a GORM implementation of WorkItemRepository
type GormWorkItemRepository struct {
	db *gorm.DB
}

// NewWorkItemRepository creates a new WorkItemRepository
func NewWorkItemRepository(db *gorm.DB) WorkItemRepository {
	return &GormWorkItemRepository{db: db}
}

// Create creates a new work item
func (r *GormWorkItemRepository) Create(item *models.WorkItem) error {
	return r.db.Create(item).Error
}

// FindByID finds a work item by ID
func (r *GormWorkItemRepository) FindByID(id string) (*models.WorkItem, error) {
	var item models.WorkItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByProject retrieves the work items of one project
func (r *GormWorkItemRepository) ListByProject(projectID string) ([]models.WorkItem, error) {
	var items []models.WorkItem
	if err := r.db.Where("project_id = ?", projectID).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update updates a work item
func (r *GormWorkItemRepository) Update(item *models.WorkItem) error {
	return r.db.Save(item).Error
}

// Delete soft deletes a work item
func (r *GormWorkItemRepository) Delete(id string) error {
	return r.db.Delete(&models.WorkItem{}, "id = ?", id).Error
}
