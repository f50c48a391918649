package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Username     string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	About        string         `gorm:"type:text" json:"about"`
	Github       string         `gorm:"type:varchar(255)" json:"github"`
	Facebook     string         `gorm:"type:varchar(100)" json:"facebook"`
	Twitter      string         `gorm:"type:varchar(100)" json:"twitter"`
	LastSignInAt *time.Time     `gorm:"index" json:"last_sign_in_at"`
	SignInCount  int            `gorm:"not null;default:0" json:"sign_in_count"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Projects []Project `gorm:"many2many:project_memberships;" json:"-"`
}

// HasSignedIn reports whether the user has ever completed a sign-in.
func (u User) HasSignedIn() bool {
	return u.LastSignInAt != nil
}
