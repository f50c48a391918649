package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/yukikurage/student-directory-api/internal/cache"
	"github.com/yukikurage/student-directory-api/internal/models"
	"github.com/yukikurage/student-directory-api/internal/ranking"
	"github.com/yukikurage/student-directory-api/internal/repository"
	"github.com/yukikurage/student-directory-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrNotProfileOwner = errors.New("only the profile owner can edit this profile")
	ErrInvalidSort     = errors.New("invalid sort order")
)

// Index sort orders.
const (
	SortRecent   = "recent"
	SortUsername = "username"
	SortNewest   = "newest"
)

// UserService provides profile and students index operations.
type UserService struct {
	userRepo repository.UserRepository
	cache    IndexCache
}

// NewUserService creates a new UserService. cache may be nil.
func NewUserService(userRepo repository.UserRepository, indexCache IndexCache) *UserService {
	return &UserService{
		userRepo: userRepo,
		cache:    indexCache,
	}
}

// GetProfile returns a user with their projects.
func (s *UserService) GetProfile(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByIDWithProjects(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// GetEditableProfile returns the subject's profile for editing by actor.
func (s *UserService) GetEditableProfile(actorID, subjectID uint64) (*models.User, error) {
	if actorID != subjectID {
		return nil, ErrNotProfileOwner
	}
	user, err := s.userRepo.FindByID(subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateProfileInput holds profile changes. Nil fields are left unchanged.
type UpdateProfileInput struct {
	About    *string
	Github   *string
	Facebook *string
	Twitter  *string
}

// UpdateProfile applies input to the subject's profile on behalf of actor.
func (s *UserService) UpdateProfile(ctx context.Context, actorID, subjectID uint64, input UpdateProfileInput) (*models.User, error) {
	user, err := s.GetEditableProfile(actorID, subjectID)
	if err != nil {
		return nil, err
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	apply(&user.About, input.About)
	apply(&user.Github, input.Github)
	apply(&user.Facebook, input.Facebook)
	apply(&user.Twitter, input.Twitter)

	if err := s.userRepo.UpdateProfile(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.invalidateIndex(ctx)
	return user, nil
}

// ListUsersInput selects a page of the students index.
type ListUsersInput struct {
	Sort     string
	Page     int
	PageSize int
}

// UserPage is one page of the students index.
type UserPage struct {
	Users    []models.User `json:"users"`
	Sort     string        `json:"sort"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Total    int64         `json:"total"`
}

// ListUsers returns a page of users. The default order ranks the most
// recently signed in users first.
func (s *UserService) ListUsers(ctx context.Context, input ListUsersInput) (*UserPage, error) {
	sort := strings.ToLower(strings.TrimSpace(input.Sort))
	if sort == "" {
		sort = SortRecent
	}
	params := utils.NewPaginationParams(input.Page, input.PageSize)

	switch sort {
	case SortRecent:
		return s.listRecent(ctx, params)
	case SortUsername, SortNewest:
		users, total, err := s.userRepo.List(repository.UserFilter{
			Sort:   repository.UserSort(sort),
			Offset: params.Offset,
			Limit:  params.Limit,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		return &UserPage{Users: users, Sort: sort, Page: params.Page, PageSize: params.Limit, Total: total}, nil
	default:
		return nil, ErrInvalidSort
	}
}

func (s *UserService) listRecent(ctx context.Context, params utils.PaginationParams) (*UserPage, error) {
	var (
		version  int64
		storable bool
	)
	if s.cache != nil {
		var cached UserPage
		v, err := s.cache.Get(ctx, params.Page, params.Limit, &cached)
		switch {
		case err == nil:
			return &cached, nil
		case errors.Is(err, cache.ErrMiss):
			version, storable = v, true
		default:
			log.Warn().Err(err).Msg("Students index cache read failed")
		}
	}

	users, err := s.userRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	ranked := ranking.Rank(users)
	page := &UserPage{
		Users:    ranking.Page(ranked, params.Offset, params.Limit),
		Sort:     SortRecent,
		Page:     params.Page,
		PageSize: params.Limit,
		Total:    int64(len(ranked)),
	}

	if storable {
		if err := s.cache.Set(ctx, version, params.Page, params.Limit, page); err != nil {
			log.Warn().Err(err).Msg("Students index cache write failed")
		}
	}

	return page, nil
}

func (s *UserService) invalidateIndex(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate students index cache")
	}
}
