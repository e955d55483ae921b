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

// JobInput carries the caller-supplied fields of a job listing.
type JobInput struct {
	Title           string
	CompanyName     string
	Description     string
	Requirements    model.StringList
	Category        string
	JobType         string
	ExperienceLevel string
	SalaryMin       decimal.Decimal
	SalaryMax       decimal.Decimal
	Location        string
	Skills          model.StringList
}

// JobService handles job listing operations.
type JobService interface {
	CreateJob(ctx context.Context, employerID string, in JobInput) (*model.Job, error)
	ListJobs(ctx context.Context, filter repository.JobFilter) ([]model.Job, error)
	GetJob(ctx context.Context, id string) (*model.Job, error)
	UpdateJob(ctx context.Context, callerID, id string, in JobInput, status model.ListingStatus) (*model.Job, error)
	DeleteJob(ctx context.Context, callerID, id string) error
}

type jobService struct {
	jobRepo  repository.JobRepository
	userRepo repository.UserRepository
}

// NewJobService creates a new job service.
func NewJobService(jobRepo repository.JobRepository, userRepo repository.UserRepository) JobService {
	return &jobService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// CreateJob inserts a new active job owned by the caller. Only
// employers and clients may post.
func (s *jobService) CreateJob(ctx context.Context, employerID string, in JobInput) (*model.Job, error) {
	owner, err := s.userRepo.FindByID(ctx, employerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find owner: %w", err)
	}
	if !owner.UserType.CanPostListings() {
		return nil, apperrors.ErrRoleNotAllowed
	}

	job := &model.Job{
		EmployerID:      employerID,
		Title:           in.Title,
		CompanyName:     in.CompanyName,
		Description:     in.Description,
		Requirements:    in.Requirements,
		Category:        in.Category,
		JobType:         in.JobType,
		ExperienceLevel: in.ExperienceLevel,
		SalaryMin:       in.SalaryMin,
		SalaryMax:       in.SalaryMax,
		Location:        in.Location,
		Skills:          in.Skills,
		Status:          model.ListingStatusActive,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// ListJobs returns active jobs matching the filter.
func (s *jobService) ListJobs(ctx context.Context, filter repository.JobFilter) ([]model.Job, error) {
	jobs, err := s.jobRepo.ListActive(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// GetJob fetches a job by id. Every successful fetch increments the
// view counter by exactly one; the returned record reflects the bump.
func (s *jobService) GetJob(ctx context.Context, id string) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	if err := s.jobRepo.IncrementViews(ctx, id); err != nil {
		return nil, fmt.Errorf("increment views: %w", err)
	}
	job.Views++

	return job, nil
}

// UpdateJob replaces the mutable fields of a job. Only the owner may
// update; an empty status leaves the current one in place.
func (s *jobService) UpdateJob(ctx context.Context, callerID, id string, in JobInput, status model.ListingStatus) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	if job.EmployerID != callerID {
		return nil, apperrors.ErrNotOwner
	}

	job.Title = in.Title
	job.CompanyName = in.CompanyName
	job.Description = in.Description
	job.Requirements = in.Requirements
	job.Category = in.Category
	job.JobType = in.JobType
	job.ExperienceLevel = in.ExperienceLevel
	job.SalaryMin = in.SalaryMin
	job.SalaryMax = in.SalaryMax
	job.Location = in.Location
	job.Skills = in.Skills
	if status != "" {
		job.Status = status
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

// DeleteJob removes a job. Only the owner may delete. Existing
// applications are left in place.
func (s *jobService) DeleteJob(ctx context.Context, callerID, id string) error {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrJobNotFound
		}
		return fmt.Errorf("find job: %w", err)
	}
	if job.EmployerID != callerID {
		return apperrors.ErrNotOwner
	}

	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}
