package models

import "time"

// SavedPost marks a recipe post a user has saved for later
type SavedPost struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_saved_post"`
	PostID    string    `json:"post_id" gorm:"index;uniqueIndex:idx_user_saved_post"` // MongoDB ObjectID as string
	CreatedAt time.Time `json:"created_at"`
}
