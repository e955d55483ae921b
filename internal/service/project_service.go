package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "wallxy/internal/errors"
	"wallxy/internal/model"
	"wallxy/internal/repository"
)

// ProjectInput carries the caller-supplied fields of a project listing.
type ProjectInput struct {
	Title       string
	Description string
	Category    string
	BudgetType  string
	BudgetMin   decimal.Decimal
	BudgetMax   decimal.Decimal
	Duration    string
	Skills      model.StringList
}

// ProjectService handles project listing operations.
type ProjectService interface {
	CreateProject(ctx context.Context, clientID string, in ProjectInput) (*model.Project, error)
	ListProjects(ctx context.Context, filter repository.ProjectFilter) ([]model.Project, error)
	GetProject(ctx context.Context, id string) (*model.Project, error)
	UpdateProject(ctx context.Context, callerID, id string, in ProjectInput, status model.ListingStatus) (*model.Project, error)
	DeleteProject(ctx context.Context, callerID, id string) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// CreateProject inserts a new active project owned by the caller. Only
// employers and clients may post.
func (s *projectService) CreateProject(ctx context.Context, clientID string, in ProjectInput) (*model.Project, error) {
	owner, err := s.userRepo.FindByID(ctx, clientID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find owner: %w", err)
	}
	if !owner.UserType.CanPostListings() {
		return nil, apperrors.ErrRoleNotAllowed
	}

	project := &model.Project{
		ClientID:    clientID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		BudgetType:  in.BudgetType,
		BudgetMin:   in.BudgetMin,
		BudgetMax:   in.BudgetMax,
		Duration:    in.Duration,
		Skills:      in.Skills,
		Status:      model.ListingStatusActive,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

// ListProjects returns active projects matching the filter.
func (s *projectService) ListProjects(ctx context.Context, filter repository.ProjectFilter) ([]model.Project, error) {
	projects, err := s.projectRepo.ListActive(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// GetProject fetches a project by id, incrementing the view counter by
// exactly one on success.
func (s *projectService) GetProject(ctx context.Context, id string) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	if err := s.projectRepo.IncrementViews(ctx, id); err != nil {
		return nil, fmt.Errorf("increment views: %w", err)
	}
	project.Views++

	return project, nil
}

// UpdateProject replaces the mutable fields of a project. Owner only.
func (s *projectService) UpdateProject(ctx context.Context, callerID, id string, in ProjectInput, status model.ListingStatus) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	if project.ClientID != callerID {
		return nil, apperrors.ErrNotOwner
	}

	project.Title = in.Title
	project.Description = in.Description
	project.Category = in.Category
	project.BudgetType = in.BudgetType
	project.BudgetMin = in.BudgetMin
	project.BudgetMax = in.BudgetMax
	project.Duration = in.Duration
	project.Skills = in.Skills
	if status != "" {
		project.Status = status
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return project, nil
}

// DeleteProject removes a project. Owner only; proposals are left in
// place.
func (s *projectService) DeleteProject(ctx context.Context, callerID, id string) error {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("find project: %w", err)
	}
	if project.ClientID != callerID {
		return apperrors.ErrNotOwner
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
