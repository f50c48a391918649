package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/student-directory-api/internal/cache"
	"github.com/yukikurage/student-directory-api/internal/fixtures"
	"github.com/yukikurage/student-directory-api/internal/models"
	"github.com/yukikurage/student-directory-api/internal/repository"
	"github.com/yukikurage/student-directory-api/internal/testutil"
	"gorm.io/gorm"
)

var errCacheMiss = cache.ErrMiss

func strPtr(s string) *string { return &s }

// UserServiceTestSuite exercises profiles and the students index
type UserServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	redis   *miniredis.Miniredis
	service *UserService
	auth    *AuthService
	ctx     context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.redis = miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: s.redis.Addr()})
	s.T().Cleanup(func() {
		client.Close()
	})

	indexCache := cache.NewIndexCache(client, time.Minute)
	repo := repository.NewUserRepository(s.db)
	s.service = NewUserService(repo, indexCache)
	s.auth = NewAuthService(repo, WithAuthIndexCache(indexCache))
	s.ctx = context.Background()
}

func (s *UserServiceTestSuite) createUser(b *fixtures.UserBuilder) *models.User {
	user, err := b.Create(s.db)
	s.Require().NoError(err)
	return user
}

func usernames(users []models.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Username
	}
	return out
}

func (s *UserServiceTestSuite) TestListUsers_RecentFirst() {
	s.createUser(fixtures.NewUser("weeks3").SignedInWeeksAgo(3))
	s.createUser(fixtures.NewUser("never").NeverSignedIn())
	s.createUser(fixtures.NewUser("weeks1").SignedInWeeksAgo(1))
	s.createUser(fixtures.NewUser("weeks2").SignedInWeeksAgo(2))

	page, err := s.service.ListUsers(s.ctx, ListUsersInput{})
	s.Require().NoError(err)

	s.Equal(SortRecent, page.Sort)
	s.EqualValues(4, page.Total)
	s.Equal([]string{"weeks1", "weeks2", "weeks3", "never"}, usernames(page.Users))
}

func (s *UserServiceTestSuite) TestListUsers_SignInMovesUserToTop() {
	s.createUser(fixtures.NewUser("other").SignedInWeeksAgo(1))
	s.createUser(fixtures.NewUser("user").SignedInWeeksAgo(2))

	page, err := s.service.ListUsers(s.ctx, ListUsersInput{})
	s.Require().NoError(err)
	s.Equal("other", page.Users[0].Username)

	_, err = s.auth.Login(s.ctx, LoginInput{Login: "user", Password: fixtures.DefaultPassword})
	s.Require().NoError(err)

	page, err = s.service.ListUsers(s.ctx, ListUsersInput{})
	s.Require().NoError(err)
	s.Equal("user", page.Users[0].Username)
}

func (s *UserServiceTestSuite) TestListUsers_ServedFromCache() {
	s.createUser(fixtures.NewUser("alice").SignedInWeeksAgo(1))

	_, err := s.service.ListUsers(s.ctx, ListUsersInput{Page: 1, PageSize: 10})
	s.Require().NoError(err)

	// Written behind the service's back: the cached page hides it.
	s.createUser(fixtures.NewUser("bob"))

	page, err := s.service.ListUsers(s.ctx, ListUsersInput{Page: 1, PageSize: 10})
	s.Require().NoError(err)
	s.Equal([]string{"alice"}, usernames(page.Users))

	s.redis.FastForward(2 * time.Minute)

	page, err = s.service.ListUsers(s.ctx, ListUsersInput{Page: 1, PageSize: 10})
	s.Require().NoError(err)
	s.Len(page.Users, 2)
}

// signInDuringList runs onList once, right after ListAll has taken its snapshot.
type signInDuringList struct {
	repository.UserRepository
	onList func()
}

func (r *signInDuringList) ListAll() ([]models.User, error) {
	users, err := r.UserRepository.ListAll()
	if r.onList != nil {
		hook := r.onList
		r.onList = nil
		hook()
	}
	return users, err
}

func (s *UserServiceTestSuite) TestListUsers_RebuildRacingSignInIsNotServed() {
	s.createUser(fixtures.NewUser("a").SignedInWeeksAgo(1))
	s.createUser(fixtures.NewUser("b").SignedInWeeksAgo(2))

	client := redis.NewClient(&redis.Options{Addr: s.redis.Addr()})
	s.T().Cleanup(func() {
		client.Close()
	})
	indexCache := cache.NewIndexCache(client, time.Minute)
	repo := repository.NewUserRepository(s.db)
	auth := NewAuthService(repo, WithAuthIndexCache(indexCache))
	service := NewUserService(&signInDuringList{
		UserRepository: repo,
		onList: func() {
			_, err := auth.Login(s.ctx, LoginInput{Login: "b", Password: fixtures.DefaultPassword})
			s.Require().NoError(err)
		},
	}, indexCache)

	// Built from the snapshot taken before b signed in.
	page, err := service.ListUsers(s.ctx, ListUsersInput{})
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, usernames(page.Users))

	page, err = service.ListUsers(s.ctx, ListUsersInput{})
	s.Require().NoError(err)
	s.Equal([]string{"b", "a"}, usernames(page.Users))
}

func (s *UserServiceTestSuite) TestListUsers_CacheDownFallsThrough() {
	s.createUser(fixtures.NewUser("alice"))
	s.redis.Close()

	page, err := s.service.ListUsers(s.ctx, ListUsersInput{})
	s.Require().NoError(err)
	s.Len(page.Users, 1)
}

func (s *UserServiceTestSuite) TestListUsers_Pagination() {
	for i := 0; i < 5; i++ {
		s.createUser(fixtures.NewUser(string(rune('a'+i)) + "user").SignedInWeeksAgo(i))
	}

	page, err := s.service.ListUsers(s.ctx, ListUsersInput{Page: 2, PageSize: 2})
	s.Require().NoError(err)
	s.Equal([]string{"cuser", "duser"}, usernames(page.Users))
	s.EqualValues(5, page.Total)

	page, err = s.service.ListUsers(s.ctx, ListUsersInput{Page: 9, PageSize: 2})
	s.Require().NoError(err)
	s.Empty(page.Users)
}

func (s *UserServiceTestSuite) TestListUsers_OtherSorts() {
	s.createUser(fixtures.NewUser("carol"))
	s.createUser(fixtures.NewUser("alice"))

	page, err := s.service.ListUsers(s.ctx, ListUsersInput{Sort: "username"})
	s.Require().NoError(err)
	s.Equal([]string{"alice", "carol"}, usernames(page.Users))

	page, err = s.service.ListUsers(s.ctx, ListUsersInput{Sort: "newest"})
	s.Require().NoError(err)
	s.Equal([]string{"alice", "carol"}, usernames(page.Users))

	_, err = s.service.ListUsers(s.ctx, ListUsersInput{Sort: "karma"})
	s.ErrorIs(err, ErrInvalidSort)
}

func (s *UserServiceTestSuite) TestUpdateProfile_Owner() {
	user := s.createUser(fixtures.NewUser("alice").WithAbout("I rock").WithGithub("http://www.github.com/foobar"))

	updated, err := s.service.UpdateProfile(s.ctx, user.ID, user.ID, UpdateProfileInput{
		About:    strPtr("New about me"),
		Facebook: strPtr(" facebook "),
	})
	s.Require().NoError(err)
	s.Equal("New about me", updated.About)
	s.Equal("facebook", updated.Facebook)

	profile, err := s.service.GetProfile(user.ID)
	s.Require().NoError(err)
	s.Equal("New about me", profile.About)
	s.Equal("facebook", profile.Facebook)
	s.Equal("http://www.github.com/foobar", profile.Github)
}

func (s *UserServiceTestSuite) TestUpdateProfile_NotOwner() {
	alice := s.createUser(fixtures.NewUser("alice").WithAbout("I rock"))
	bob := s.createUser(fixtures.NewUser("bob"))

	_, err := s.service.UpdateProfile(s.ctx, bob.ID, alice.ID, UpdateProfileInput{About: strPtr("hacked")})
	s.ErrorIs(err, ErrNotProfileOwner)

	profile, err := s.service.GetProfile(alice.ID)
	s.Require().NoError(err)
	s.Equal("I rock", profile.About)
}

func (s *UserServiceTestSuite) TestGetProfile_WithProjects() {
	user := s.createUser(fixtures.NewUser("alice"))
	_, err := fixtures.NewProject("Robots").WithMembers(user).Create(s.db)
	s.Require().NoError(err)

	profile, err := s.service.GetProfile(user.ID)
	s.Require().NoError(err)
	s.Require().Len(profile.Projects, 1)
	s.Equal("Robots", profile.Projects[0].Name)

	_, err = s.service.GetProfile(999)
	s.ErrorIs(err, ErrUserNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
