package services

import (
	"log"

	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/models"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/repositories"
)

// VisibilityService decides whether a viewer may see a user's content.
// The rule is: public profiles are visible to everyone; a private
// profile is visible only to itself and to viewers who follow it.
type VisibilityService struct {
	followRepo repositories.FollowRepository
}

// NewVisibilityService creates a new VisibilityService
func NewVisibilityService(followRepo repositories.FollowRepository) *VisibilityService {
	return &VisibilityService{followRepo: followRepo}
}

// CanView reports whether viewerID may see target's content. viewerID 0
// is the anonymous viewer and sees only public profiles. This never
// fails: a store error degrades to "cannot view".
func (s *VisibilityService) CanView(viewerID uint, target *models.User) bool {
	if target == nil {
		return false
	}
	if !target.IsPrivate {
		return true
	}
	if viewerID == 0 {
		return false
	}
	if viewerID == target.ID {
		return true
	}

	following, err := s.followRepo.IsFollowing(viewerID, target.ID)
	if err != nil {
		log.Printf("visibility check for user %d viewing %d failed: %v", viewerID, target.ID, err)
		return false
	}
	return following
}
