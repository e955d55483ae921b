package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "wallxy/internal/errors"
	"wallxy/internal/model"
)

func newProposalServiceWithMocks() (ProposalService, *MockProposalRepository, *MockProjectRepository, *MockUserRepository, *MockNotificationRepository) {
	mockPropRepo := new(MockProposalRepository)
	mockProjRepo := new(MockProjectRepository)
	mockUserRepo := new(MockUserRepository)
	mockNotifRepo := new(MockNotificationRepository)
	service := NewProposalService(mockPropRepo, mockProjRepo, mockUserRepo, mockNotifRepo)
	return service, mockPropRepo, mockProjRepo, mockUserRepo, mockNotifRepo
}

func TestProposalService_Submit(t *testing.T) {
	budget := decimal.NewFromInt(1500)

	t.Run("freelancer submits a proposal", func(t *testing.T) {
		service, mockPropRepo, mockProjRepo, mockUserRepo, mockNotifRepo := newProposalServiceWithMocks()

		mockUserRepo.On("FindByID", mock.Anything, "free-1").Return(&model.User{ID: "free-1", FullName: "Omar Nasser", UserType: model.UserTypeFreelancer}, nil)
		mockProjRepo.On("FindByID", mock.Anything, "proj-1").Return(&model.Project{ID: "proj-1", ClientID: "client-1", Title: "Villa render"}, nil)
		mockPropRepo.On("ExistsForProject", mock.Anything, "proj-1", "free-1").Return(false, nil)
		mockPropRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Proposal")).Return(nil)
		mockProjRepo.On("IncrementProposals", mock.Anything, "proj-1").Return(nil)
		mockNotifRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
			return n.UserID == "client-1" && n.Type == model.NotificationTypeProposal
		})).Return(nil)

		proposal, err := service.Submit(context.Background(), "free-1", "proj-1", "I can deliver this", budget, "2 weeks")

		assert.NoError(t, err)
		assert.Equal(t, model.SubmissionStatusPending, proposal.Status)
		assert.True(t, proposal.ProposedBudget.Equal(budget))
		mockProjRepo.AssertNumberOfCalls(t, "IncrementProposals", 1)
		mockNotifRepo.AssertExpectations(t)
	})

	t.Run("jobseeker cannot submit", func(t *testing.T) {
		service, mockPropRepo, mockProjRepo, mockUserRepo, _ := newProposalServiceWithMocks()

		mockUserRepo.On("FindByID", mock.Anything, "seeker-1").Return(&model.User{ID: "seeker-1", UserType: model.UserTypeJobSeeker}, nil)

		proposal, err := service.Submit(context.Background(), "seeker-1", "proj-1", "", budget, "")

		assert.Equal(t, apperrors.ErrRoleNotAllowed, err)
		assert.Nil(t, proposal)
		mockProjRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		mockPropRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate proposal is rejected", func(t *testing.T) {
		service, mockPropRepo, mockProjRepo, mockUserRepo, _ := newProposalServiceWithMocks()

		mockUserRepo.On("FindByID", mock.Anything, "free-1").Return(&model.User{ID: "free-1", UserType: model.UserTypeFreelancer}, nil)
		mockProjRepo.On("FindByID", mock.Anything, "proj-1").Return(&model.Project{ID: "proj-1", ClientID: "client-1"}, nil)
		mockPropRepo.On("ExistsForProject", mock.Anything, "proj-1", "free-1").Return(true, nil)

		proposal, err := service.Submit(context.Background(), "free-1", "proj-1", "", budget, "")

		assert.Equal(t, apperrors.ErrAlreadyProposed, err)
		assert.Nil(t, proposal)
		mockProjRepo.AssertNotCalled(t, "IncrementProposals", mock.Anything, mock.Anything)
	})
}

func TestProposalService_ProposalsForProject(t *testing.T) {
	t.Run("owner can list", func(t *testing.T) {
		service, mockPropRepo, mockProjRepo, _, _ := newProposalServiceWithMocks()

		mockProjRepo.On("FindByID", mock.Anything, "proj-1").Return(&model.Project{ID: "proj-1", ClientID: "client-1"}, nil)
		mockPropRepo.On("ListByProject", mock.Anything, "proj-1").Return([]model.Proposal{{ID: "prop-1"}}, nil)

		proposals, err := service.ProposalsForProject(context.Background(), "client-1", "proj-1")

		assert.NoError(t, err)
		assert.Len(t, proposals, 1)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		service, mockPropRepo, mockProjRepo, _, _ := newProposalServiceWithMocks()

		mockProjRepo.On("FindByID", mock.Anything, "proj-1").Return(&model.Project{ID: "proj-1", ClientID: "client-1"}, nil)

		proposals, err := service.ProposalsForProject(context.Background(), "intruder", "proj-1")

		assert.Equal(t, apperrors.ErrNotOwner, err)
		assert.Nil(t, proposals)
		mockPropRepo.AssertNotCalled(t, "ListByProject", mock.Anything, mock.Anything)
	})
}

func TestProposalService_UpdateStatus(t *testing.T) {
	t.Run("project owner accepts a proposal", func(t *testing.T) {
		service, mockPropRepo, mockProjRepo, _, mockNotifRepo := newProposalServiceWithMocks()

		mockPropRepo.On("FindByID", mock.Anything, "prop-1").Return(&model.Proposal{ID: "prop-1", ProjectID: "proj-1", FreelancerID: "free-1", Status: model.SubmissionStatusPending}, nil)
		mockProjRepo.On("FindByID", mock.Anything, "proj-1").Return(&model.Project{ID: "proj-1", ClientID: "client-1", Title: "Villa render"}, nil)
		mockPropRepo.On("UpdateStatus", mock.Anything, "prop-1", model.SubmissionStatusAccepted).Return(nil)
		mockNotifRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
			return n.UserID == "free-1" && n.Type == model.NotificationTypeStatus
		})).Return(nil)

		proposal, err := service.UpdateStatus(context.Background(), "client-1", "prop-1", model.SubmissionStatusAccepted)

		assert.NoError(t, err)
		assert.Equal(t, model.SubmissionStatusAccepted, proposal.Status)
		mockNotifRepo.AssertExpectations(t)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		service, mockPropRepo, mockProjRepo, _, _ := newProposalServiceWithMocks()

		mockPropRepo.On("FindByID", mock.Anything, "prop-1").Return(&model.Proposal{ID: "prop-1", ProjectID: "proj-1"}, nil)
		mockProjRepo.On("FindByID", mock.Anything, "proj-1").Return(&model.Project{ID: "proj-1", ClientID: "client-1"}, nil)

		proposal, err := service.UpdateStatus(context.Background(), "intruder", "prop-1", model.SubmissionStatusRejected)

		assert.Equal(t, apperrors.ErrNotOwner, err)
		assert.Nil(t, proposal)
		mockPropRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		service, mockPropRepo, _, _, _ := newProposalServiceWithMocks()

		proposal, err := service.UpdateStatus(context.Background(), "client-1", "prop-1", model.SubmissionStatus("shortlisted"))

		assert.Equal(t, apperrors.ErrInvalidStatus, err)
		assert.Nil(t, proposal)
		mockPropRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}
