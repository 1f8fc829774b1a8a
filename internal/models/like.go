package models

import "time"

// Like represents a like on a post; at most one per (post, user). A like
// either exists or it does not, so rows are hard-deleted: a soft-delete
// marker would leave the removed row occupying the unique index and block
// re-liking.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"index;uniqueIndex:idx_post_user_like"` // MongoDB ObjectID as string
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_post_user_like"`
	CreatedAt time.Time `json:"created_at"`
}
