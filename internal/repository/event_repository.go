package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kamilarndt/fabmanage-api/internal/database"
	"github.com/kamilarndt/fabmanage-api/internal/models"
	"github.com/kamilarndt/fabmanage-api/internal/utils"
)

// GormEventRepository is a GORM implementation of EventRepository
type GormEventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &GormEventRepository{db: db}
}

// Create creates a new event, assigning a fresh id when the draft has none
func (r *GormEventRepository) Create(event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	return r.db.Create(event).Error
}

// FindByID finds an event by ID
func (r *GormEventRepository) FindByID(id string) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// List retrieves events with filtering and pagination
func (r *GormEventRepository) List(filter EventFilter) ([]models.Event, int64, error) {
	var events []models.Event

	query := r.db.Model(&models.Event{})

	if filter.ResourceID != nil {
		query = query.Where("events.resource_id = ?", *filter.ResourceID)
	}
	if filter.ProjectID != nil {
		query = query.Where("events.project_id = ?", *filter.ProjectID)
	}
	if filter.Phase != nil {
		query = query.Where("events.phase = ?", *filter.Phase)
	}
	// Window filters use interval intersection, not containment, so an
	// event straddling a boundary is still listed.
	if filter.To != nil {
		query = query.Where("events.start_time < ?", *filter.To)
	}
	if filter.From != nil {
		query = query.Where("events.end_time > ?", *filter.From)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("events.start_time ASC")
	if filter.Page > 0 && filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PaginationParams{
			Page:   filter.Page,
			Limit:  filter.PageSize,
			Offset: (filter.Page - 1) * filter.PageSize,
		}))
	}

	if err := listQuery.Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// ListAll retrieves every event without pagination, for snapshot loads
func (r *GormEventRepository) ListAll() ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Order("start_time ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Update updates an event
func (r *GormEventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete soft deletes an event
func (r *GormEventRepository) Delete(id string) error {
	return r.db.Delete(&models.Event{}, "id = ?", id).Error
}
