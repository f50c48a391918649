package repository

import (
	"time"

	"github.com/yukikurage/student-directory-api/internal/database"
	"github.com/yukikurage/student-directory-api/internal/models"
	"github.com/yukikurage/student-directory-api/internal/utils"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDWithProjects finds a user by ID with projects preloaded by name
func (r *GormUserRepository) FindByIDWithProjects(id uint64) (*models.User, error) {
	var user models.User
	err := r.db.
		Preload("Projects", func(db *gorm.DB) *gorm.DB {
			return db.Order("projects.name ASC")
		}).
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByLogin finds a user whose username or email equals login
func (r *GormUserRepository) FindByLogin(login string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ? OR email = ?", login, login).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile persists the editable profile fields of a user
func (r *GormUserRepository) UpdateProfile(user *models.User) error {
	return r.db.Model(user).
		Select("About", "Github", "Facebook", "Twitter").
		Updates(user).Error
}

// RecordSignIn advances last_sign_in_at monotonically and bumps sign_in_count
func (r *GormUserRepository) RecordSignIn(id uint64, at time.Time) (bool, error) {
	result := r.db.Model(&models.User{}).
		Where("id = ?", id).
		Where("(last_sign_in_at IS NULL OR last_sign_in_at < ?)", at).
		Updates(map[string]interface{}{
			"last_sign_in_at": at,
			"sign_in_count":   gorm.Expr("sign_in_count + ?", 1),
		})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	// Clock behind the stored value: still count the sign-in.
	err := r.db.Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumn("sign_in_count", gorm.Expr("sign_in_count + ?", 1)).Error
	return false, err
}

// ListAll returns every user in insertion order
func (r *GormUserRepository) ListAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Scopes(database.InsertionOrder).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// List returns one page of users in SQL order, plus the total count
func (r *GormUserRepository) List(filter UserFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.Sort {
	case SortByNewest:
		query = query.Order("users.created_at DESC").Order("users.id DESC")
	default:
		query = query.Order("users.username ASC")
	}

	var users []models.User
	params := utils.PaginationParams{Offset: filter.Offset, Limit: filter.Limit}
	if err := query.Scopes(database.Paginate(params)).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
