package repository

import (
	"context"

	"gorm.io/gorm"

	"wallxy/internal/model"
)

// JobFilter narrows job listing queries. Zero values mean "no filter";
// a zero Limit returns the full result set.
type JobFilter struct {
	Category        string
	JobType         string
	ExperienceLevel string
	Limit           int
	Offset          int
}

// JobRepository defines job persistence operations.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	Update(ctx context.Context, job *model.Job) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Job, error)
	ListActive(ctx context.Context, filter JobFilter) ([]model.Job, error)
	IncrementViews(ctx context.Context, id string) error
	IncrementApplicants(ctx context.Context, id string) error
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) Update(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *jobRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Job{}).Error
}

func (r *jobRepository) FindByID(ctx context.Context, id string) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// ListActive lists active jobs, newest first, honoring optional filters.
func (r *jobRepository) ListActive(ctx context.Context, filter JobFilter) ([]model.Job, error) {
	query := r.db.WithContext(ctx).
		Where("status = ?", model.ListingStatusActive).
		Order("created_at DESC")

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if filter.ExperienceLevel != "" {
		query = query.Where("experience_level = ?", filter.ExperienceLevel)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var jobs []model.Job
	if err := query.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// IncrementViews bumps the view counter by one. The increment happens
// in the database, so concurrent readers never lose updates.
func (r *jobRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.Job{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// IncrementApplicants bumps the denormalized applicant counter by one.
func (r *jobRepository) IncrementApplicants(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.Job{}).
		Where("id = ?", id).
		UpdateColumn("applicants_count", gorm.Expr("applicants_count + ?", 1)).Error
}
