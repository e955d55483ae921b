package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListingStatus represents the lifecycle state of a job or project posting.
type ListingStatus string

const (
	ListingStatusActive ListingStatus = "active"
	ListingStatusClosed ListingStatus = "closed"
)

// Job represents an employment listing posted by an employer or client.
type Job struct {
	ID              string          `json:"id" gorm:"type:char(36);primaryKey"`
	EmployerID      string          `json:"employer_id" gorm:"type:char(36);not null;index"`
	Title           string          `json:"title" gorm:"size:255;not null"`
	CompanyName     string          `json:"company_name" gorm:"size:255"`
	Description     string          `json:"description" gorm:"type:text"`
	Requirements    StringList      `json:"requirements" gorm:"type:json"`
	Category        string          `json:"category" gorm:"size:100;index"`
	JobType         string          `json:"job_type" gorm:"size:50;index"`
	ExperienceLevel string          `json:"experience_level" gorm:"size:50;index"`
	SalaryMin       decimal.Decimal `json:"salary_min" gorm:"type:decimal(12,2);default:0"`
	SalaryMax       decimal.Decimal `json:"salary_max" gorm:"type:decimal(12,2);default:0"`
	Location        string          `json:"location" gorm:"size:255"`
	Skills          StringList      `json:"skills" gorm:"type:json"`
	Status          ListingStatus   `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	Views           int64           `json:"views" gorm:"default:0"`
	ApplicantsCount int64           `json:"applicants_count" gorm:"default:0"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Relations
	Employer User `json:"-" gorm:"foreignKey:EmployerID"`
}

// BeforeCreate sets UUID before creating the record.
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}
