// Package fixtures builds users and projects with every required field set.
// It is used by tests and by the seed command.
package fixtures

import (
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/student-directory-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the plain-text password of every built user.
const DefaultPassword = "password123"

// defaultPasswordHash is computed once with the minimum cost so that
// building many users stays fast.
var defaultPasswordHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("fixtures: hash default password: %v", err))
	}
	return string(hash)
}()

// UserBuilder builds a models.User.
type UserBuilder struct {
	user models.User
}

// NewUser starts a user with the given username, a derived email address,
// the default password and a last sign-in of one week ago.
func NewUser(username string) *UserBuilder {
	lastSignIn := time.Now().UTC().Add(-7 * 24 * time.Hour)
	return &UserBuilder{user: models.User{
		Username:     username,
		Email:        strings.ToLower(username) + "@example.com",
		PasswordHash: defaultPasswordHash,
		LastSignInAt: &lastSignIn,
	}}
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("fixtures: hash password: %v", err))
	}
	b.user.PasswordHash = string(hash)
	return b
}

func (b *UserBuilder) WithAbout(about string) *UserBuilder {
	b.user.About = about
	return b
}

func (b *UserBuilder) WithGithub(github string) *UserBuilder {
	b.user.Github = github
	return b
}

func (b *UserBuilder) WithFacebook(facebook string) *UserBuilder {
	b.user.Facebook = facebook
	return b
}

func (b *UserBuilder) WithTwitter(twitter string) *UserBuilder {
	b.user.Twitter = twitter
	return b
}

// SignedInAt sets the last sign-in time.
func (b *UserBuilder) SignedInAt(at time.Time) *UserBuilder {
	at = at.UTC()
	b.user.LastSignInAt = &at
	return b
}

// SignedInWeeksAgo sets the last sign-in to the given number of weeks ago.
func (b *UserBuilder) SignedInWeeksAgo(weeks int) *UserBuilder {
	return b.SignedInAt(time.Now().Add(-time.Duration(weeks) * 7 * 24 * time.Hour))
}

// NeverSignedIn clears the last sign-in time.
func (b *UserBuilder) NeverSignedIn() *UserBuilder {
	b.user.LastSignInAt = nil
	return b
}

// Build returns the user without persisting it.
func (b *UserBuilder) Build() models.User {
	return b.user
}

// Create inserts the user and returns it with its ID.
func (b *UserBuilder) Create(db *gorm.DB) (*models.User, error) {
	user := b.user
	if err := db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user %q: %w", user.Username, err)
	}
	return &user, nil
}

// ProjectBuilder builds a models.Project.
type ProjectBuilder struct {
	project models.Project
	members []uint64
}

// NewProject starts a project with the given name.
func NewProject(name string) *ProjectBuilder {
	return &ProjectBuilder{project: models.Project{Name: name}}
}

func (b *ProjectBuilder) WithDescription(description string) *ProjectBuilder {
	b.project.Description = description
	return b
}

// WithMembers adds the users as members once the project is created.
func (b *ProjectBuilder) WithMembers(users ...*models.User) *ProjectBuilder {
	for _, u := range users {
		b.members = append(b.members, u.ID)
	}
	return b
}

// Create inserts the project and its memberships in one transaction.
func (b *ProjectBuilder) Create(db *gorm.DB) (*models.Project, error) {
	project := b.project
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		for _, userID := range b.members {
			membership := &models.ProjectMembership{
				ProjectID: project.ID,
				UserID:    userID,
				JoinedAt:  time.Now(),
			}
			if err := tx.Create(membership).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create project %q: %w", project.Name, err)
	}
	return &project, nil
}
