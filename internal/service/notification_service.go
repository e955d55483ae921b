package service

import (
	"context"
	"fmt"

	"wallxy/internal/model"
	"wallxy/internal/repository"
)

// NotificationService exposes a user's notification inbox.
type NotificationService interface {
	MyNotifications(ctx context.Context, userID string) ([]model.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service.
func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

// MyNotifications returns the caller's notifications, newest first.
func (s *notificationService) MyNotifications(ctx context.Context, userID string) ([]model.Notification, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flags one of the caller's notifications as read. Marking a
// notification that is not the caller's is a silent no-op.
func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	if err := s.notificationRepo.MarkRead(ctx, notificationID, userID); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}
