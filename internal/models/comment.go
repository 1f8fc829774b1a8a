package models

import "gorm.io/gorm"

// Comment represents a comment on a recipe post. AuthorName is a snapshot
// taken at creation time and does not track later profile edits.
type Comment struct {
	gorm.Model
	PostID     string `json:"post_id" gorm:"index"` // MongoDB ObjectID as string
	UserID     uint   `json:"user_id" gorm:"index"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}
