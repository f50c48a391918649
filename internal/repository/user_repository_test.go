package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/student-directory-api/internal/fixtures"
	"github.com/yukikurage/student-directory-api/internal/testutil"
	"gorm.io/gorm"
)

func TestUserRepository_FindByLogin(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)

	created, err := fixtures.NewUser("alice").WithEmail("alice@school.test").Create(db)
	require.NoError(t, err)

	byName, err := repo.FindByLogin("alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byEmail, err := repo.FindByLogin("alice@school.test")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = repo.FindByLogin("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_UniqueUsernameAndEmail(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := fixtures.NewUser("alice").Create(db)
	require.NoError(t, err)

	_, err = fixtures.NewUser("alice").WithEmail("other@example.com").Create(db)
	assert.Error(t, err)

	_, err = fixtures.NewUser("alice2").WithEmail("alice@example.com").Create(db)
	assert.Error(t, err)
}

func TestUserRepository_RecordSignIn_Monotonic(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)

	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	user, err := fixtures.NewUser("alice").NeverSignedIn().Create(db)
	require.NoError(t, err)

	updated, err := repo.RecordSignIn(user.ID, now)
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = repo.RecordSignIn(user.ID, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.False(t, updated)

	reloaded, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.LastSignInAt)
	assert.True(t, now.Equal(*reloaded.LastSignInAt))
	assert.Equal(t, 2, reloaded.SignInCount)
}

func TestUserRepository_UpdateProfile_ClearsFields(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)

	user, err := fixtures.NewUser("alice").WithAbout("I rock").WithTwitter("alice").Create(db)
	require.NoError(t, err)

	user.About = "New about me"
	user.Twitter = ""
	require.NoError(t, repo.UpdateProfile(user))

	reloaded, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "New about me", reloaded.About)
	assert.Empty(t, reloaded.Twitter)
}

func TestUserRepository_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)

	for _, name := range []string{"carol", "alice", "bob"} {
		_, err := fixtures.NewUser(name).Create(db)
		require.NoError(t, err)
	}

	users, total, err := repo.List(UserFilter{Sort: SortByUsername, Offset: 0, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)

	users, _, err = repo.List(UserFilter{Sort: SortByNewest, Offset: 0, Limit: 10})
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "bob", users[0].Username)

	all, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "carol", all[0].Username)
}
