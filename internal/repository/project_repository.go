package repository

import (
	"context"

	"gorm.io/gorm"

	"wallxy/internal/model"
)

// ProjectFilter narrows project listing queries.
type ProjectFilter struct {
	Category   string
	BudgetType string
	Limit      int
	Offset     int
}

// ProjectRepository defines project persistence operations.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Project, error)
	ListActive(ctx context.Context, filter ProjectFilter) ([]model.Project, error)
	IncrementViews(ctx context.Context, id string) error
	IncrementProposals(ctx context.Context, id string) error
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepository) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Project{}).Error
}

func (r *projectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListActive lists active projects, newest first, honoring optional filters.
func (r *projectRepository) ListActive(ctx context.Context, filter ProjectFilter) ([]model.Project, error) {
	query := r.db.WithContext(ctx).
		Where("status = ?", model.ListingStatusActive).
		Order("created_at DESC")

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.BudgetType != "" {
		query = query.Where("budget_type = ?", filter.BudgetType)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var projects []model.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// IncrementViews bumps the view counter by one atomically.
func (r *projectRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// IncrementProposals bumps the denormalized proposal counter by one.
func (r *projectRepository) IncrementProposals(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", id).
		UpdateColumn("proposals_count", gorm.Expr("proposals_count + ?", 1)).Error
}
