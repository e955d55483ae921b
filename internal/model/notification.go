package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationType labels what produced a notification.
type NotificationType string

const (
	NotificationTypeApplication NotificationType = "application"
	NotificationTypeProposal    NotificationType = "proposal"
	NotificationTypeStatus      NotificationType = "status"
)

// Notification is a per-user inbox entry produced when submissions are
// created or reviewed.
type Notification struct {
	ID        string           `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    string           `json:"user_id" gorm:"type:char(36);not null;index"`
	Title     string           `json:"title" gorm:"size:255;not null"`
	Message   string           `json:"message" gorm:"type:text"`
	Type      NotificationType `json:"type" gorm:"type:varchar(20);not null"`
	Link      string           `json:"link,omitempty" gorm:"size:512"`
	IsRead    bool             `json:"is_read" gorm:"default:false;index"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
