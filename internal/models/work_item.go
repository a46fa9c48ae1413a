package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type WorkItemPriority string

const (
	PriorityLow    WorkItemPriority = "low"
	PriorityMedium WorkItemPriority = "medium"
	PriorityHigh   WorkItemPriority = "high"
	PriorityUrgent WorkItemPriority = "urgent"
)

// ValidWorkItemPriority reports whether p is one of the known priorities.
func ValidWorkItemPriority(p WorkItemPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// WorkItem is a fabrication task ("tile") belonging to a project.
type WorkItem struct {
	ID            string           `gorm:"type:varchar(36);primarykey" json:"id"`
	ProjectID     string           `gorm:"type:varchar(36);not null;index" json:"project_id"`
	Name          string           `gorm:"type:varchar(255);not null" json:"name"`
	Module        string           `gorm:"type:varchar(255)" json:"module"`
	Priority      WorkItemPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	Status        string           `gorm:"type:varchar(50)" json:"status"`
	EstimatedCost float64          `gorm:"not null;default:0" json:"estimated_cost"`
	DueDate       *time.Time       `json:"due_date"`
	Dependencies  string           `gorm:"type:text" json:"-"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

// DependencyIDs returns the declared predecessor item ids. Dependencies is
// stored as a comma-delimited column.
func (w *WorkItem) DependencyIDs() []string {
	if w.Dependencies == "" {
		return nil
	}
	parts := strings.Split(w.Dependencies, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// SetDependencyIDs stores the given predecessor ids on the Dependencies column.
func (w *WorkItem) SetDependencyIDs(ids []string) {
	w.Dependencies = strings.Join(ids, ",")
}
