package models

import "time"

// NotificationKind enumerates the events that fan out into notifications
type NotificationKind string

const (
	NotificationFollow  NotificationKind = "follow"
	NotificationLike    NotificationKind = "like"
	NotificationComment NotificationKind = "comment"
)

// Notification represents a derived record created as a side effect of a
// follow, like or comment. SenderName is a snapshot taken at creation time.
// Read state is one-way: unread to read, never back.
type Notification struct {
	ID            uint             `json:"id" gorm:"primaryKey"`
	Kind          NotificationKind `json:"kind" gorm:"size:20;index"`
	SenderID      uint             `json:"sender_id" gorm:"index"`
	SenderName    string           `json:"sender_name"`
	RecipientID   uint             `json:"recipient_id" gorm:"index"`
	RelatedPostID string           `json:"related_post_id,omitempty"` // empty for follow notifications
	Message       string           `json:"message"`
	IsRead        bool             `json:"is_read" gorm:"default:false;index"`
	CreatedAt     time.Time        `json:"created_at" gorm:"index"`
}
