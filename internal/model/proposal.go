package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Proposal represents a freelancer's bid against a project listing.
type Proposal struct {
	ID             string           `json:"id" gorm:"type:char(36);primaryKey"`
	ProjectID      string           `json:"project_id" gorm:"type:char(36);not null;index"`
	FreelancerID   string           `json:"freelancer_id" gorm:"type:char(36);not null;index"`
	CoverLetter    string           `json:"cover_letter" gorm:"type:text"`
	ProposedBudget decimal.Decimal  `json:"proposed_budget" gorm:"type:decimal(12,2);not null"`
	DeliveryTime   string           `json:"delivery_time" gorm:"size:100"`
	Status         SubmissionStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	// Relations
	Project    Project `json:"-" gorm:"foreignKey:ProjectID"`
	Freelancer User    `json:"-" gorm:"foreignKey:FreelancerID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Proposal) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
