package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionStatus represents the review state of an application or proposal.
type SubmissionStatus string

const (
	SubmissionStatusPending   SubmissionStatus = "pending"
	SubmissionStatusInterview SubmissionStatus = "interview"
	SubmissionStatusAccepted  SubmissionStatus = "accepted"
	SubmissionStatusRejected  SubmissionStatus = "rejected"
)

// Valid reports whether s is one of the known review states.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusInterview,
		SubmissionStatusAccepted, SubmissionStatusRejected:
		return true
	}
	return false
}

// Application represents a job seeker's submission against a job listing.
type Application struct {
	ID          string           `json:"id" gorm:"type:char(36);primaryKey"`
	JobID       string           `json:"job_id" gorm:"type:char(36);not null;index"`
	ApplicantID string           `json:"applicant_id" gorm:"type:char(36);not null;index"`
	CoverLetter string           `json:"cover_letter" gorm:"type:text"`
	ResumeURL   string           `json:"resume_url,omitempty" gorm:"size:512"`
	Status      SubmissionStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	// Relations
	Job       Job  `json:"-" gorm:"foreignKey:JobID"`
	Applicant User `json:"-" gorm:"foreignKey:ApplicantID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
