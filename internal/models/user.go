package models

import (
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// User represents a cook profile stored in PostgreSQL
type User struct {
	gorm.Model     `json:"-"`
	ID             uint   `json:"id" gorm:"primaryKey"`
	Name           string `json:"name"`
	Email          string `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Bio            string `json:"bio"`
	Specialties    string `json:"specialties"` // Comma-separated cuisine specialties
	ProfilePicture string `json:"profile_picture"`
	CoverPhoto     string `json:"cover_photo"`
	IsPrivate      bool   `json:"is_private" gorm:"default:false"`
	FollowerCount  int    `json:"follower_count" gorm:"default:0"`
	FollowingCount int    `json:"following_count" gorm:"default:0"`
	Role           string `json:"role" gorm:"size:10;default:USER"`
	Password       string `json:"-"`                                         // Store hashed password, ignore for JSON serialization
	FirebaseUID    string `json:"firebase_uid,omitempty" gorm:"uniqueIndex"` // Link to Firebase User UID
}

// UserCompact is the trimmed-down author shape embedded in feed and notification responses
type UserCompact struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"`
	IsPrivate      bool   `json:"is_private"`
}

// ToCompact strips a user down to what listing responses embed
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:             u.ID,
		Name:           u.Name,
		ProfilePicture: u.ProfilePicture,
		IsPrivate:      u.IsPrivate,
	}
}

type CreateLocalUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type UpdateUserRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Bio         string `json:"bio,omitempty" validate:"omitempty,max=300"`
	Specialties string `json:"specialties,omitempty" validate:"omitempty,max=200"`
	IsPrivate   *bool  `json:"is_private,omitempty"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
