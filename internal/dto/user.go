package dto

import (
	"fmt"
	"time"

	"github.com/yukikurage/student-directory-api/internal/constants"
	"github.com/yukikurage/student-directory-api/internal/models"
	"github.com/yukikurage/student-directory-api/internal/utils"
)

const avatarSize = 80

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// ProfileLinkDTO is an external profile link. Label is the stored value.
type ProfileLinkDTO struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ProfileDTO is the read view of a user's profile
type ProfileDTO struct {
	ID           uint64           `json:"id"`
	Username     string           `json:"username"`
	AvatarURL    string           `json:"avatar_url"`
	About        string           `json:"about"`
	Links        []ProfileLinkDTO `json:"links"`
	Projects     []ProjectDTO     `json:"projects"`
	LastSignInAt *time.Time       `json:"last_sign_in_at"`
	CanEdit      bool             `json:"can_edit"`
	EditURL      string           `json:"edit_url,omitempty"`
}

// EditProfileDTO is the edit view of the viewer's own profile
type EditProfileDTO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	About     string `json:"about"`
	Github    string `json:"github"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	UpdateURL string `json:"update_url"`
}

// UserListItemDTO represents a student on the index page
type UserListItemDTO struct {
	ID           uint64     `json:"id"`
	Username     string     `json:"username"`
	AvatarURL    string     `json:"avatar_url"`
	ProfileURL   string     `json:"profile_url"`
	LastSignInAt *time.Time `json:"last_sign_in_at"`
}

// UserListResponse represents a paginated students index
type UserListResponse struct {
	Title      string            `json:"title"`
	Users      []UserListItemDTO `json:"users"`
	Sort       string            `json:"sort"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalCount int64             `json:"total_count"`
	TotalPages int               `json:"total_pages"`
}

// UserPath returns the read view path of a user.
func UserPath(id uint64) string {
	return fmt.Sprintf("/api/users/%d", id)
}

// EditUserPath returns the edit view path of a user.
func EditUserPath(id uint64) string {
	return UserPath(id) + "/edit"
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}

// ToSelfUserDTO converts the authenticated user, including the email
func ToSelfUserDTO(user models.User) UserDTO {
	dto := ToUserDTO(user)
	dto.Email = user.Email
	return dto
}

// ToProfileDTO converts a User with preloaded projects to its read view.
// The edit affordance is included only when the viewer is the user.
func ToProfileDTO(user models.User, viewerID uint64) ProfileDTO {
	projects := make([]ProjectDTO, len(user.Projects))
	for i, p := range user.Projects {
		projects[i] = ToProjectDTO(p)
	}

	dto := ProfileDTO{
		ID:           user.ID,
		Username:     user.Username,
		AvatarURL:    utils.AvatarURL(user.Email, avatarSize),
		About:        user.About,
		Links:        profileLinks(user),
		Projects:     projects,
		LastSignInAt: user.LastSignInAt,
		CanEdit:      user.ID == viewerID,
	}
	if dto.CanEdit {
		dto.EditURL = EditUserPath(user.ID)
	}
	return dto
}

// ToEditProfileDTO converts a User to its edit view
func ToEditProfileDTO(user models.User) EditProfileDTO {
	return EditProfileDTO{
		ID:        user.ID,
		Username:  user.Username,
		About:     user.About,
		Github:    user.Github,
		Facebook:  user.Facebook,
		Twitter:   user.Twitter,
		UpdateURL: UserPath(user.ID),
	}
}

// ToUserListItemDTO converts a User to an index entry
func ToUserListItemDTO(user models.User) UserListItemDTO {
	return UserListItemDTO{
		ID:           user.ID,
		Username:     user.Username,
		AvatarURL:    utils.AvatarURL(user.Email, avatarSize),
		ProfileURL:   UserPath(user.ID),
		LastSignInAt: user.LastSignInAt,
	}
}

// ToUserListResponse converts one page of users to UserListResponse
func ToUserListResponse(users []models.User, sort string, page, pageSize int, totalCount int64) UserListResponse {
	items := make([]UserListItemDTO, len(users))
	for i, user := range users {
		items[i] = ToUserListItemDTO(user)
	}

	return UserListResponse{
		Title:      constants.IndexTitle,
		Users:      items,
		Sort:       sort,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: utils.TotalPages(totalCount, pageSize),
	}
}

func profileLinks(user models.User) []ProfileLinkDTO {
	fields := []struct {
		kind, value, base string
	}{
		{"github", user.Github, utils.GithubBaseURL},
		{"facebook", user.Facebook, utils.FacebookBaseURL},
		{"twitter", user.Twitter, utils.TwitterBaseURL},
	}

	links := make([]ProfileLinkDTO, 0, len(fields))
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		links = append(links, ProfileLinkDTO{
			Kind:  f.kind,
			Label: f.value,
			URL:   utils.ProfileURL(f.value, f.base),
		})
	}
	return links
}
