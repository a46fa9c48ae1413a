package models

import (
	"time"

	"gorm.io/gorm"
)

type EventPhase string

const (
	PhaseDesign     EventPhase = "design"
	PhaseCutting    EventPhase = "cutting"
	PhaseProduction EventPhase = "production"
)

// ValidEventPhase reports whether p is one of the known phases.
func ValidEventPhase(p EventPhase) bool {
	switch p {
	case PhaseDesign, PhaseCutting, PhaseProduction:
		return true
	}
	return false
}

// Event is a single time-bounded assignment on a resource. ResourceID is a
// weak reference: deleting a Resource leaves its events in place with a
// dangling id, and such events are excluded from resource-scoped views.
// Start and End map to start_time/end_time; START and END are reserved words.
type Event struct {
	ID         string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Title      string         `gorm:"type:varchar(255);not null" json:"title"`
	Start      time.Time      `gorm:"column:start_time;not null;index" json:"start"`
	End        time.Time      `gorm:"column:end_time;not null" json:"end"`
	AllDay     bool           `gorm:"not null;default:false" json:"all_day"`
	ResourceID *string        `gorm:"type:varchar(64);index" json:"resource_id"`
	Phase      *EventPhase    `gorm:"type:varchar(20)" json:"phase"`
	TileID     *string        `gorm:"type:varchar(36)" json:"tile_id"`
	ProjectID  *string        `gorm:"type:varchar(36);index" json:"project_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
