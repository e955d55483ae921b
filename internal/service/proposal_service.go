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

// ProposalService handles project proposals and their review workflow.
type ProposalService interface {
	Submit(ctx context.Context, freelancerID, projectID, coverLetter string, proposedBudget decimal.Decimal, deliveryTime string) (*model.Proposal, error)
	MyProposals(ctx context.Context, freelancerID string) ([]model.Proposal, error)
	ProposalsForProject(ctx context.Context, callerID, projectID string) ([]model.Proposal, error)
	UpdateStatus(ctx context.Context, callerID, proposalID string, status model.SubmissionStatus) (*model.Proposal, error)
}

type proposalService struct {
	proposalRepo     repository.ProposalRepository
	projectRepo      repository.ProjectRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

// NewProposalService creates a new proposal service.
func NewProposalService(
	proposalRepo repository.ProposalRepository,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
) ProposalService {
	return &proposalService{
		proposalRepo:     proposalRepo,
		projectRepo:      projectRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

// Submit creates a pending proposal against a project and bumps the
// project's proposal counter by one. Freelancers only; one proposal
// per freelancer per project.
func (s *proposalService) Submit(ctx context.Context, freelancerID, projectID, coverLetter string, proposedBudget decimal.Decimal, deliveryTime string) (*model.Proposal, error) {
	freelancer, err := s.userRepo.FindByID(ctx, freelancerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find freelancer: %w", err)
	}
	if freelancer.UserType != model.UserTypeFreelancer {
		return nil, apperrors.ErrRoleNotAllowed
	}

	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	exists, err := s.proposalRepo.ExistsForProject(ctx, projectID, freelancerID)
	if err != nil {
		return nil, fmt.Errorf("check existing proposal: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyProposed
	}

	proposal := &model.Proposal{
		ProjectID:      projectID,
		FreelancerID:   freelancerID,
		CoverLetter:    coverLetter,
		ProposedBudget: proposedBudget,
		DeliveryTime:   deliveryTime,
		Status:         model.SubmissionStatusPending,
	}

	if err := s.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, fmt.Errorf("create proposal: %w", err)
	}

	if err := s.projectRepo.IncrementProposals(ctx, projectID); err != nil {
		return nil, fmt.Errorf("increment proposals: %w", err)
	}

	// Best-effort inbox entry for the project owner.
	_ = s.notificationRepo.Create(ctx, &model.Notification{
		UserID:  project.ClientID,
		Title:   "New proposal",
		Message: fmt.Sprintf("%s sent a proposal for %q", freelancer.FullName, project.Title),
		Type:    model.NotificationTypeProposal,
		Link:    "/projects/" + projectID,
	})

	return proposal, nil
}

// MyProposals returns all proposals submitted by the caller.
func (s *proposalService) MyProposals(ctx context.Context, freelancerID string) ([]model.Proposal, error) {
	proposals, err := s.proposalRepo.ListByFreelancer(ctx, freelancerID)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	return proposals, nil
}

// ProposalsForProject returns every proposal referencing the project.
// Only the project owner may read them.
func (s *proposalService) ProposalsForProject(ctx context.Context, callerID, projectID string) ([]model.Proposal, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	if project.ClientID != callerID {
		return nil, apperrors.ErrNotOwner
	}

	proposals, err := s.proposalRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	return proposals, nil
}

// UpdateStatus moves a proposal to a new review state. Only the owner
// of the parent project may review.
func (s *proposalService) UpdateStatus(ctx context.Context, callerID, proposalID string, status model.SubmissionStatus) (*model.Proposal, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	proposal, err := s.proposalRepo.FindByID(ctx, proposalID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProposalNotFound
		}
		return nil, fmt.Errorf("find proposal: %w", err)
	}

	project, err := s.projectRepo.FindByID(ctx, proposal.ProjectID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	if project.ClientID != callerID {
		return nil, apperrors.ErrNotOwner
	}

	if err := s.proposalRepo.UpdateStatus(ctx, proposalID, status); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	proposal.Status = status

	// Best-effort inbox entry for the freelancer.
	_ = s.notificationRepo.Create(ctx, &model.Notification{
		UserID:  proposal.FreelancerID,
		Title:   "Proposal " + string(status),
		Message: fmt.Sprintf("Your proposal for %q is now %s", project.Title, status),
		Type:    model.NotificationTypeStatus,
		Link:    "/projects/" + project.ID,
	})

	return proposal, nil
}
