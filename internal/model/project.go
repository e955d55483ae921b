package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Project represents a freelance project listing posted by a client.
type Project struct {
	ID             string          `json:"id" gorm:"type:char(36);primaryKey"`
	ClientID       string          `json:"client_id" gorm:"type:char(36);not null;index"`
	Title          string          `json:"title" gorm:"size:255;not null"`
	Description    string          `json:"description" gorm:"type:text"`
	Category       string          `json:"category" gorm:"size:100;index"`
	BudgetType     string          `json:"budget_type" gorm:"size:20"` // "fixed" or "hourly"
	BudgetMin      decimal.Decimal `json:"budget_min" gorm:"type:decimal(12,2);default:0"`
	BudgetMax      decimal.Decimal `json:"budget_max" gorm:"type:decimal(12,2);default:0"`
	Duration       string          `json:"duration" gorm:"size:100"`
	Skills         StringList      `json:"skills" gorm:"type:json"`
	Status         ListingStatus   `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	Views          int64           `json:"views" gorm:"default:0"`
	ProposalsCount int64           `json:"proposals_count" gorm:"default:0"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	// Relations
	Client User `json:"-" gorm:"foreignKey:ClientID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
