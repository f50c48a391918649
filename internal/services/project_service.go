package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/student-directory-api/internal/models"
	"github.com/yukikurage/student-directory-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound       = errors.New("project not found")
	ErrInvalidProjectName    = errors.New("project name cannot be empty")
	ErrAlreadyProjectMember  = errors.New("user is already a member of this project")
	ErrNotProjectMember      = errors.New("user is not a member of this project")
	ErrProjectMemberNotFound = errors.New("project member not found")
)

// ProjectService provides business logic for project operations.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// CreateProjectInput represents parameters to create a new project.
type CreateProjectInput struct {
	Name        string
	Description string
	CreatorID   uint64
}

// CreateProject creates a new project with the creator as its first member.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidProjectName
	}

	project := &models.Project{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if err := s.projectRepo.AddMember(project.ID, input.CreatorID); err != nil {
		return nil, fmt.Errorf("failed to add creator to project: %w", err)
	}

	return project, nil
}

// ListProjectsForUser returns the projects the user works on.
func (s *ProjectService) ListProjectsForUser(userID uint64) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProjectWithMembers returns a project and all of its members.
func (s *ProjectService) GetProjectWithMembers(projectID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByIDWithMembers(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// JoinProject adds the user to the project.
func (s *ProjectService) JoinProject(projectID, userID uint64) (*models.Project, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return nil, err
	}

	isMember, err := s.projectRepo.IsMember(projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify membership: %w", err)
	}
	if isMember {
		return nil, ErrAlreadyProjectMember
	}

	if err := s.projectRepo.AddMember(projectID, userID); err != nil {
		return nil, fmt.Errorf("failed to add member to project: %w", err)
	}

	return project, nil
}

// RemoveMember removes target from the project. The actor must be a member;
// members may remove themselves.
func (s *ProjectService) RemoveMember(projectID, actorID, targetID uint64) error {
	if _, err := s.findProject(projectID); err != nil {
		return err
	}

	actorIsMember, err := s.projectRepo.IsMember(projectID, actorID)
	if err != nil {
		return fmt.Errorf("failed to verify membership: %w", err)
	}
	if !actorIsMember {
		return ErrNotProjectMember
	}

	targetIsMember, err := s.projectRepo.IsMember(projectID, targetID)
	if err != nil {
		return fmt.Errorf("failed to verify membership: %w", err)
	}
	if !targetIsMember {
		return ErrProjectMemberNotFound
	}

	if err := s.projectRepo.RemoveMember(projectID, targetID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	return nil
}

func (s *ProjectService) findProject(projectID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}
