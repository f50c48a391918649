package repository

import (
	"time"

	"github.com/yukikurage/student-directory-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByIDWithMembers finds a project by ID with members preloaded
func (r *GormProjectRepository) FindByIDWithMembers(id uint64) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("users.username ASC")
		}).
		First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// AddMember links a user to a project through the shared join table, so the
// membership is visible from both sides.
func (r *GormProjectRepository) AddMember(projectID, userID uint64) error {
	membership := &models.ProjectMembership{
		ProjectID: projectID,
		UserID:    userID,
		JoinedAt:  time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(membership).Error
}

// RemoveMember unlinks a user from a project
func (r *GormProjectRepository) RemoveMember(projectID, userID uint64) error {
	return r.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&models.ProjectMembership{}).Error
}

// IsMember reports whether the user belongs to the project
func (r *GormProjectRepository) IsMember(projectID, userID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProjectMembership{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUserID lists all projects a user is a member of
func (r *GormProjectRepository) ListByUserID(userID uint64) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Joins("JOIN project_memberships ON project_memberships.project_id = projects.id").
		Where("project_memberships.user_id = ?", userID).
		Order("projects.name ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}
