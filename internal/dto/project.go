package dto

import "github.com/yukikurage/student-directory-api/internal/models"

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ProjectDetailDTO represents a project with its members
type ProjectDetailDTO struct {
	ProjectDTO
	Members  []UserListItemDTO `json:"members"`
	IsMember bool              `json:"is_member"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
	}
}

// ToProjectDetailDTO converts a project with preloaded members
func ToProjectDetailDTO(project models.Project, viewerID uint64) ProjectDetailDTO {
	members := make([]UserListItemDTO, len(project.Members))
	isMember := false
	for i, member := range project.Members {
		members[i] = ToUserListItemDTO(member)
		if member.ID == viewerID {
			isMember = true
		}
	}

	return ProjectDetailDTO{
		ProjectDTO: ToProjectDTO(project),
		Members:    members,
		IsMember:   isMember,
	}
}
