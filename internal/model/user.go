package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserType classifies an account by marketplace role. The role is fixed
// at registration; no endpoint changes it afterwards.
type UserType string

const (
	UserTypeJobSeeker  UserType = "jobseeker"
	UserTypeEmployer   UserType = "employer"
	UserTypeFreelancer UserType = "freelancer"
	UserTypeClient     UserType = "client"
)

// CanPostListings reports whether this user type may create jobs or projects.
func (t UserType) CanPostListings() bool {
	return t == UserTypeEmployer || t == UserTypeClient
}

// CanApply reports whether this user type may submit job applications.
func (t UserType) CanApply() bool {
	return t == UserTypeJobSeeker || t == UserTypeFreelancer
}

// User represents a registered marketplace identity.
type User struct {
	ID                 string          `json:"id" gorm:"type:char(36);primaryKey"`
	Email              string          `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash       string          `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FullName           string          `json:"full_name" gorm:"size:255;not null"`
	UserType           UserType        `json:"user_type" gorm:"type:varchar(20);not null;index"`
	AvatarURL          string          `json:"avatar_url,omitempty" gorm:"size:512"`
	Bio                string          `json:"bio,omitempty" gorm:"type:text"`
	Skills             StringList      `json:"skills" gorm:"type:json"`
	HourlyRate         decimal.Decimal `json:"hourly_rate" gorm:"type:decimal(12,2);default:0"`
	ExperienceLevel    string          `json:"experience_level,omitempty" gorm:"size:50"`
	Location           string          `json:"location,omitempty" gorm:"size:255"`
	Rating             float64         `json:"rating" gorm:"default:0"`
	CompletedProjects  int             `json:"completed_projects" gorm:"default:0"`
	VerificationStatus string          `json:"verification_status" gorm:"size:20;default:'unverified'"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
