package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a recipe post stored in MongoDB
type Post struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID        uint               `json:"user_id" bson:"user_id"` // ID of the user who created the post
	Title         string             `json:"title" bson:"title"`
	Content       string             `json:"content" bson:"content"`
	Ingredients   []string           `json:"ingredients,omitempty" bson:"ingredients,omitempty"`
	Steps         []string           `json:"steps,omitempty" bson:"steps,omitempty"`
	Category      string             `json:"category,omitempty" bson:"category,omitempty"`
	ImageURLs     []string           `json:"image_urls,omitempty" bson:"image_urls,omitempty"`
	VideoURL      string             `json:"video_url,omitempty" bson:"video_url,omitempty"`
	LikesCount    int                `json:"likes_count" bson:"likes_count"`
	CommentsCount int                `json:"comments_count" bson:"comments_count"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// Engagement is the trivial score used by the trending sort
func (p *Post) Engagement() int {
	return p.LikesCount + p.CommentsCount
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=120"`
	Content     string   `json:"content" validate:"required,min=1,max=2000"`
	Ingredients []string `json:"ingredients,omitempty" validate:"omitempty,dive,min=1,max=200"`
	Steps       []string `json:"steps,omitempty" validate:"omitempty,dive,min=1,max=1000"`
	Category    string   `json:"category,omitempty" validate:"omitempty,max=50"`
	ImageURLs   []string `json:"image_urls,omitempty" validate:"omitempty,max=3,dive,url"`
	VideoURL    string   `json:"video_url,omitempty" validate:"omitempty,url"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title       string   `json:"title,omitempty" validate:"omitempty,min=1,max=120"`
	Content     string   `json:"content,omitempty" validate:"omitempty,min=1,max=2000"`
	Ingredients []string `json:"ingredients,omitempty" validate:"omitempty,dive,min=1,max=200"`
	Steps       []string `json:"steps,omitempty" validate:"omitempty,dive,min=1,max=1000"`
	Category    string   `json:"category,omitempty" validate:"omitempty,max=50"`
	ImageURLs   []string `json:"image_urls,omitempty" validate:"omitempty,max=3,dive,url"`
	VideoURL    string   `json:"video_url,omitempty" validate:"omitempty,url"`
}
