package repository

import (
	"time"

	"github.com/yukikurage/student-directory-api/internal/models"
)

// UserSort selects the SQL ordering for listing users.
type UserSort string

const (
	SortByUsername UserSort = "username"
	SortByNewest   UserSort = "newest"
)

// UserFilter holds ordering and pagination options for listing users
type UserFilter struct {
	Sort   UserSort
	Offset int
	Limit  int
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByIDWithProjects finds a user by ID with projects preloaded by name
	FindByIDWithProjects(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByLogin finds a user whose username or email equals login
	FindByLogin(login string) (*models.User, error)

	// UpdateProfile persists the editable profile fields of a user
	UpdateProfile(user *models.User) error

	// RecordSignIn advances the last sign-in time and bumps the sign-in
	// count. The timestamp never moves backwards; updated reports whether
	// it moved.
	RecordSignIn(id uint64, at time.Time) (updated bool, err error)

	// ListAll returns every user in insertion order
	ListAll() ([]models.User, error)

	// List returns one page of users in SQL order, plus the total count
	List(filter UserFilter) ([]models.User, int64, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// FindByIDWithMembers finds a project by ID with members preloaded
	FindByIDWithMembers(id uint64) (*models.Project, error)

	// AddMember links a user to a project. Adding an existing member is a no-op.
	AddMember(projectID, userID uint64) error

	// RemoveMember unlinks a user from a project
	RemoveMember(projectID, userID uint64) error

	// IsMember reports whether the user belongs to the project
	IsMember(projectID, userID uint64) (bool, error)

	// ListByUserID lists all projects a user is a member of
	ListByUserID(userID uint64) ([]models.Project, error)
}
