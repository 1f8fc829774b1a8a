package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/models"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/repositories"
	"gorm.io/gorm"
)

// SocialGraphService owns follow/unfollow state transitions and the
// denormalized follower/following counters on both users involved.
type SocialGraphService struct {
	userRepo     repositories.UserRepository
	followRepo   repositories.FollowRepository
	notification *NotificationService
	locks        *entityLocks
}

// NewSocialGraphService creates a new SocialGraphService
func NewSocialGraphService(userRepo repositories.UserRepository, followRepo repositories.FollowRepository, notification *NotificationService) *SocialGraphService {
	return &SocialGraphService{
		userRepo:     userRepo,
		followRepo:   followRepo,
		notification: notification,
		locks:        newEntityLocks(),
	}
}

// Follow makes actor follow target. Following someone already followed is
// an idempotent no-op: counters stay put and no second notification is
// created. The edge insert, both counter bumps and the FOLLOW fan-out run
// under both users' entity locks so concurrent calls on the same pair
// cannot double-increment.
func (s *SocialGraphService) Follow(ctx context.Context, actorID, targetID uint) error {
	if actorID == targetID {
		return ErrSelfFollow
	}

	actor, err := s.userRepo.GetUserByID(actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if _, err := s.userRepo.GetUserByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	unlock := s.locks.LockPair(userKey(actorID), userKey(targetID))
	defer unlock()

	following, err := s.followRepo.IsFollowing(actorID, targetID)
	if err != nil {
		return err
	}
	if following {
		return nil
	}

	edge := &models.Follow{FollowerID: actorID, FollowingID: targetID}
	if err := s.followRepo.CreateFollow(edge); err != nil {
		return err
	}
	if err := s.userRepo.IncrementFollowingCount(actorID); err != nil {
		return err
	}
	if err := s.userRepo.IncrementFollowerCount(targetID); err != nil {
		return err
	}

	// Fan-out is best-effort: the follow itself is already durable
	if err := s.notification.Notify(targetID, actorID, actor.Name, models.NotificationFollow, "", actor.Name+" started following you"); err != nil {
		log.Printf("follow notification failed: %v", err)
	}

	return nil
}

// Unfollow removes the edge and lowers both counters. Unfollowing someone
// not followed is an idempotent no-op. Any FOLLOW notification created
// earlier stays.
func (s *SocialGraphService) Unfollow(ctx context.Context, actorID, targetID uint) error {
	if _, err := s.userRepo.GetUserByID(actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if _, err := s.userRepo.GetUserByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	unlock := s.locks.LockPair(userKey(actorID), userKey(targetID))
	defer unlock()

	err := s.followRepo.DeleteFollow(actorID, targetID)
	if err != nil {
		if errors.Is(err, repositories.ErrFollowNotFound) {
			return nil
		}
		return err
	}

	if err := s.userRepo.DecrementFollowingCount(actorID); err != nil {
		return err
	}
	return s.userRepo.DecrementFollowerCount(targetID)
}

// IsFollowing reports whether actor follows target. Unknown ids read as
// false rather than failing; the visibility filter leans on that.
func (s *SocialGraphService) IsFollowing(ctx context.Context, actorID, targetID uint) (bool, error) {
	following, err := s.followRepo.IsFollowing(actorID, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return following, nil
}

func userKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func postKey(id string) string {
	return "post:" + id
}
