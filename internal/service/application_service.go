package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "wallxy/internal/errors"
	"wallxy/internal/model"
	"wallxy/internal/repository"
)

// ApplicationService handles job applications and their review workflow.
type ApplicationService interface {
	Apply(ctx context.Context, applicantID, jobID, coverLetter, resumeURL string) (*model.Application, error)
	MyApplications(ctx context.Context, applicantID string) ([]model.Application, error)
	ApplicationsForJob(ctx context.Context, callerID, jobID string) ([]model.Application, error)
	UpdateStatus(ctx context.Context, callerID, applicationID string, status model.SubmissionStatus) (*model.Application, error)
}

type applicationService struct {
	applicationRepo  repository.ApplicationRepository
	jobRepo          repository.JobRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

// NewApplicationService creates a new application service.
func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
) ApplicationService {
	return &applicationService{
		applicationRepo:  applicationRepo,
		jobRepo:          jobRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

// Apply submits a pending application against a job and bumps the job's
// applicant counter by one. Job seekers and freelancers only; one
// application per applicant per job.
func (s *applicationService) Apply(ctx context.Context, applicantID, jobID, coverLetter, resumeURL string) (*model.Application, error) {
	applicant, err := s.userRepo.FindByID(ctx, applicantID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find applicant: %w", err)
	}
	if !applicant.UserType.CanApply() {
		return nil, apperrors.ErrRoleNotAllowed
	}

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	exists, err := s.applicationRepo.ExistsForJob(ctx, jobID, applicantID)
	if err != nil {
		return nil, fmt.Errorf("check existing application: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	application := &model.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		CoverLetter: coverLetter,
		ResumeURL:   resumeURL,
		Status:      model.SubmissionStatusPending,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	if err := s.jobRepo.IncrementApplicants(ctx, jobID); err != nil {
		return nil, fmt.Errorf("increment applicants: %w", err)
	}

	// Best-effort inbox entry for the job owner.
	_ = s.notificationRepo.Create(ctx, &model.Notification{
		UserID:  job.EmployerID,
		Title:   "New application",
		Message: fmt.Sprintf("%s applied to %q", applicant.FullName, job.Title),
		Type:    model.NotificationTypeApplication,
		Link:    "/jobs/" + jobID,
	})

	return application, nil
}

// MyApplications returns all applications submitted by the caller.
func (s *applicationService) MyApplications(ctx context.Context, applicantID string) ([]model.Application, error) {
	applications, err := s.applicationRepo.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return applications, nil
}

// ApplicationsForJob returns every application referencing the job.
// Only the job owner may read them.
func (s *applicationService) ApplicationsForJob(ctx context.Context, callerID, jobID string) ([]model.Application, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	if job.EmployerID != callerID {
		return nil, apperrors.ErrNotOwner
	}

	applications, err := s.applicationRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return applications, nil
}

// UpdateStatus moves an application to a new review state. Only the
// owner of the parent job may review, and the status must be one of
// the known states. Re-applying the current status is a no-op write.
func (s *applicationService) UpdateStatus(ctx context.Context, callerID, applicationID string, status model.SubmissionStatus) (*model.Application, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}

	job, err := s.jobRepo.FindByID(ctx, application.JobID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	if job.EmployerID != callerID {
		return nil, apperrors.ErrNotOwner
	}

	if err := s.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	application.Status = status

	// Best-effort inbox entry for the applicant.
	_ = s.notificationRepo.Create(ctx, &model.Notification{
		UserID:  application.ApplicantID,
		Title:   "Application " + string(status),
		Message: fmt.Sprintf("Your application to %q is now %s", job.Title, status),
		Type:    model.NotificationTypeStatus,
		Link:    "/jobs/" + job.ID,
	})

	return application, nil
}
