package repository

import (
	"github.com/kamilarndt/fabmanage-api/internal/models"
	"gorm.io/gorm"
)

// GormResourceRepository is a GORM implementation of ResourceRepository
type GormResourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &GormResourceRepository{db: db}
}

// Create creates a new resource
func (r *GormResourceRepository) Create(resource *models.Resource) error {
	return r.db.Create(resource).Error
}

// FindByID finds a resource by ID
func (r *GormResourceRepository) FindByID(id string) (*models.Resource, error) {
	var resource models.Resource
	if err := r.db.First(&resource, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

// List retrieves resources, optionally narrowed to one category
func (r *GormResourceRepository) List(category *models.ResourceCategory) ([]models.Resource, error) {
	var resources []models.Resource
	query := r.db.Order("title ASC")
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	if err := query.Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

// Update updates a resource
func (r *GormResourceRepository) Update(resource *models.Resource) error {
	return r.db.Save(resource).Error
}

// Delete soft deletes a resource. No cascade: events keep their resource id
// and become dangling references.
func (r *GormResourceRepository) Delete(id string) error {
	return r.db.Delete(&models.Resource{}, "id = ?", id).Error
}
