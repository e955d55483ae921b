package repository

import (
	"context"

	"gorm.io/gorm"

	"wallxy/internal/model"
)

// ProposalRepository defines proposal persistence operations.
type ProposalRepository interface {
	Create(ctx context.Context, proposal *model.Proposal) error
	FindByID(ctx context.Context, id string) (*model.Proposal, error)
	ListByFreelancer(ctx context.Context, freelancerID string) ([]model.Proposal, error)
	ListByProject(ctx context.Context, projectID string) ([]model.Proposal, error)
	ExistsForProject(ctx context.Context, projectID, freelancerID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus) error
}

type proposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository creates a new proposal repository.
func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &proposalRepository{db: db}
}

func (r *proposalRepository) Create(ctx context.Context, proposal *model.Proposal) error {
	return r.db.WithContext(ctx).Create(proposal).Error
}

func (r *proposalRepository) FindByID(ctx context.Context, id string) (*model.Proposal, error) {
	var proposal model.Proposal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&proposal).Error; err != nil {
		return nil, err
	}
	return &proposal, nil
}

func (r *proposalRepository) ListByFreelancer(ctx context.Context, freelancerID string) ([]model.Proposal, error) {
	var proposals []model.Proposal
	if err := r.db.WithContext(ctx).
		Where("freelancer_id = ?", freelancerID).
		Order("created_at DESC").
		Find(&proposals).Error; err != nil {
		return nil, err
	}
	return proposals, nil
}

func (r *proposalRepository) ListByProject(ctx context.Context, projectID string) ([]model.Proposal, error) {
	var proposals []model.Proposal
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&proposals).Error; err != nil {
		return nil, err
	}
	return proposals, nil
}

// ExistsForProject reports whether the freelancer already bid on the project.
func (r *proposalRepository) ExistsForProject(ctx context.Context, projectID, freelancerID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Proposal{}).
		Where("project_id = ? AND freelancer_id = ?", projectID, freelancerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *proposalRepository) UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus) error {
	return r.db.WithContext(ctx).Model(&model.Proposal{}).
		Where("id = ?", id).
		Update("status", status).Error
}
