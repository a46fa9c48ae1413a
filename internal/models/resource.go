package models

import (
	"time"

	"gorm.io/gorm"
)

type ResourceCategory string

const (
	CategoryDesigner ResourceCategory = "designer"
	CategoryTeam     ResourceCategory = "team"
	CategoryProject  ResourceCategory = "project"
)

// ValidResourceCategory reports whether c is one of the known categories.
func ValidResourceCategory(c ResourceCategory) bool {
	switch c {
	case CategoryDesigner, CategoryTeam, CategoryProject:
		return true
	}
	return false
}

type Resource struct {
	ID        string           `gorm:"type:varchar(64);primarykey" json:"id"`
	Title     string           `gorm:"type:varchar(255);not null" json:"title"`
	Color     string           `gorm:"type:varchar(20)" json:"color"`
	Category  ResourceCategory `gorm:"type:varchar(20);not null" json:"category"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`
}
