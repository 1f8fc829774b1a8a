package validators

import (
	"testing"

	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateCreateCommentRequest(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(models.CreateCommentRequest{Content: "looks great"}))
	assert.Error(t, v.Validate(models.CreateCommentRequest{}))
}

func TestValidateCreatePostRequest(t *testing.T) {
	v := NewValidator()

	ok := models.CreatePostRequest{Title: "Pad Thai", Content: "Soak the noodles first."}
	assert.NoError(t, v.Validate(ok))

	tooManyImages := ok
	tooManyImages.ImageURLs = []string{
		"https://img.test/1.jpg",
		"https://img.test/2.jpg",
		"https://img.test/3.jpg",
		"https://img.test/4.jpg",
	}
	assert.Error(t, v.Validate(tooManyImages), "recipe posts allow at most 3 images")

	missingTitle := models.CreatePostRequest{Content: "no title"}
	assert.Error(t, v.Validate(missingTitle))
}

func TestValidateLocalSignup(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(models.CreateLocalUserRequest{
		Name:     "Alice",
		Email:    "alice@cooksync.test",
		Password: "longenough",
	}))
	assert.Error(t, v.Validate(models.CreateLocalUserRequest{
		Name:     "Alice",
		Email:    "not-an-email",
		Password: "longenough",
	}))
	assert.Error(t, v.Validate(models.CreateLocalUserRequest{
		Name:     "Alice",
		Email:    "alice@cooksync.test",
		Password: "short",
	}))
}
