package services

import (
	"errors"
	"fmt"

	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/models"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/repositories"
	"gorm.io/gorm"
)

// NotificationService owns notification fan-out and read-state tracking.
// Notify is only called internally by the social graph and interaction
// services; the listing and mark-read operations back the HTTP layer.
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// Notify persists an unread notification for recipientID. Callers treat a
// failure here as best-effort: they log it and keep the triggering social
// action's result.
func (s *NotificationService) Notify(recipientID, senderID uint, senderName string, kind models.NotificationKind, relatedPostID, message string) error {
	notification := &models.Notification{
		Kind:          kind,
		SenderID:      senderID,
		SenderName:    senderName,
		RecipientID:   recipientID,
		RelatedPostID: relatedPostID,
		Message:       message,
	}
	if err := s.notificationRepo.CreateNotification(notification); err != nil {
		return fmt.Errorf("create %s notification for user %d: %w", kind, recipientID, err)
	}
	return nil
}

// ListForRecipient returns a user's notifications, newest first
func (s *NotificationService) ListForRecipient(recipientID uint) ([]models.Notification, error) {
	return s.notificationRepo.GetByRecipientID(recipientID)
}

// ListUnread returns a user's unread notifications, newest first
func (s *NotificationService) ListUnread(recipientID uint) ([]models.Notification, error) {
	return s.notificationRepo.GetUnreadByRecipientID(recipientID)
}

// UnreadCount returns how many unread notifications a user has
func (s *NotificationService) UnreadCount(recipientID uint) (int64, error) {
	return s.notificationRepo.GetUnreadCount(recipientID)
}

// MarkRead flips one notification to read. Only the recipient may do this.
// Marking an already-read notification is a no-op, not an error.
func (s *NotificationService) MarkRead(notificationID, callerID uint) error {
	notification, err := s.notificationRepo.GetByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if notification.RecipientID != callerID {
		return ErrUnauthorized
	}
	_, err = s.notificationRepo.MarkAsRead(notificationID)
	return err
}

// MarkAllRead marks every currently unread notification for the caller.
// Notifications that become read concurrently are skipped, not errored.
func (s *NotificationService) MarkAllRead(callerID uint) error {
	unread, err := s.notificationRepo.GetUnreadByRecipientID(callerID)
	if err != nil {
		return err
	}
	for _, n := range unread {
		if _, err := s.notificationRepo.MarkAsRead(n.ID); err != nil {
			return err
		}
	}
	return nil
}
