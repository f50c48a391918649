package models

import (
	"time"

	"gorm.io/gorm"
)

// Project is a named content bucket that students work on together.
type Project struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Members []User `gorm:"many2many:project_memberships;" json:"members,omitempty"`
}
