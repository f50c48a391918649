package fixtures

import (
	"fmt"

	"github.com/yukikurage/student-directory-api/internal/models"
	"gorm.io/gorm"
)

// SeedResult reports what Seed created.
type SeedResult struct {
	Users    []*models.User
	Projects []*models.Project
}

// Seed creates count demo students, each one week less recently signed in
// than the previous, and a demo project holding the first half of them.
func Seed(db *gorm.DB, count int) (*SeedResult, error) {
	result := &SeedResult{}

	for i := 0; i < count; i++ {
		username := fmt.Sprintf("student%02d", i+1)
		user, err := NewUser(username).
			WithAbout(fmt.Sprintf("Hi, I'm %s.", username)).
			WithGithub("https://github.com/" + username).
			SignedInWeeksAgo(i).
			Create(db)
		if err != nil {
			return nil, err
		}
		result.Users = append(result.Users, user)
	}

	project, err := NewProject("Demo Project").
		WithDescription("A project shared by the first half of the class").
		WithMembers(result.Users[:len(result.Users)/2]...).
		Create(db)
	if err != nil {
		return nil, err
	}
	result.Projects = append(result.Projects, project)

	return result, nil
}
