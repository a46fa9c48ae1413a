package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Project struct {
	ID        string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Status    string         `gorm:"type:varchar(50)" json:"status"`
	Progress  int            `gorm:"not null;default:0" json:"progress"`
	StartDate *time.Time     `json:"start_date"`
	Deadline  *time.Time     `json:"deadline"`
	Modules   string         `gorm:"type:text" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	WorkItems []WorkItem `gorm:"foreignKey:ProjectID" json:"work_items,omitempty"`
}

// ModuleNames returns the project's named groups. Modules is stored as a
// comma-delimited column.
func (p *Project) ModuleNames() []string {
	if p.Modules == "" {
		return nil
	}
	parts := strings.Split(p.Modules, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// SetModuleNames stores the given group names on the Modules column.
func (p *Project) SetModuleNames(names []string) {
	p.Modules = strings.Join(names, ",")
}
