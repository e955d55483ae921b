package repository

import (
	"context"

	"gorm.io/gorm"

	"wallxy/internal/model"
)

// ApplicationRepository defines application persistence operations.
type ApplicationRepository interface {
	Create(ctx context.Context, application *model.Application) error
	FindByID(ctx context.Context, id string) (*model.Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]model.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]model.Application, error)
	ExistsForJob(ctx context.Context, jobID, applicantID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus) error
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *model.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id string) (*model.Application, error) {
	var application model.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]model.Application, error) {
	var applications []model.Application
	if err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID string) ([]model.Application, error) {
	var applications []model.Application
	if err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

// ExistsForJob reports whether the applicant already applied to the job.
func (r *applicationRepository) ExistsForJob(ctx context.Context, jobID, applicantID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus) error {
	return r.db.WithContext(ctx).Model(&model.Application{}).
		Where("id = ?", id).
		Update("status", status).Error
}
