package models

import "time"

// ProjectMembership is the join row shared by User.Projects and
// Project.Members, which keeps both sides of a membership consistent.
type ProjectMembership struct {
	ProjectID uint64    `gorm:"primarykey" json:"project_id"`
	UserID    uint64    `gorm:"primarykey" json:"user_id"`
	JoinedAt  time.Time `json:"joined_at"`
}

func (ProjectMembership) TableName() string {
	return "project_memberships"
}
