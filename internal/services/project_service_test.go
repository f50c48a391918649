package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/student-directory-api/internal/fixtures"
	"github.com/yukikurage/student-directory-api/internal/repository"
	"github.com/yukikurage/student-directory-api/internal/testutil"
)

func TestProjectService_Lifecycle(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewProjectService(repository.NewProjectRepository(db))

	alice, err := fixtures.NewUser("alice").Create(db)
	require.NoError(t, err)
	bob, err := fixtures.NewUser("bob").Create(db)
	require.NoError(t, err)
	carol, err := fixtures.NewUser("carol").Create(db)
	require.NoError(t, err)

	_, err = svc.CreateProject(CreateProjectInput{Name: "   ", CreatorID: alice.ID})
	assert.ErrorIs(t, err, ErrInvalidProjectName)

	project, err := svc.CreateProject(CreateProjectInput{Name: "Robots", CreatorID: alice.ID})
	require.NoError(t, err)

	_, err = svc.JoinProject(project.ID, bob.ID)
	require.NoError(t, err)
	_, err = svc.JoinProject(project.ID, bob.ID)
	assert.ErrorIs(t, err, ErrAlreadyProjectMember)
	_, err = svc.JoinProject(999, bob.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)

	detail, err := svc.GetProjectWithMembers(project.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Members, 2)

	bobProjects, err := svc.ListProjectsForUser(bob.ID)
	require.NoError(t, err)
	require.Len(t, bobProjects, 1)
	assert.Equal(t, "Robots", bobProjects[0].Name)

	assert.ErrorIs(t, svc.RemoveMember(project.ID, carol.ID, bob.ID), ErrNotProjectMember)
	assert.ErrorIs(t, svc.RemoveMember(project.ID, alice.ID, carol.ID), ErrProjectMemberNotFound)
	require.NoError(t, svc.RemoveMember(project.ID, alice.ID, bob.ID))

	bobProjects, err = svc.ListProjectsForUser(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobProjects)
}
