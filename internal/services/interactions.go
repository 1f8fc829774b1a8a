package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/models"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/repositories"
	"gorm.io/gorm"
)

// InteractionService owns the like toggle and the comment lifecycle,
// including their counter side effects on the parent post.
type InteractionService struct {
	postRepo     repositories.PostRepository
	userRepo     repositories.UserRepository
	likeRepo     repositories.LikeRepository
	commentRepo  repositories.CommentRepository
	notification *NotificationService
	locks        *entityLocks
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	likeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository,
	notification *NotificationService,
) *InteractionService {
	return &InteractionService{
		postRepo:     postRepo,
		userRepo:     userRepo,
		likeRepo:     likeRepo,
		commentRepo:  commentRepo,
		notification: notification,
		locks:        newEntityLocks(),
	}
}

// ToggleLike flips the like state for (post, user) and returns the new
// state. A strict toggle: every call negates current state. Liking your
// own post works but produces no notification.
func (s *InteractionService) ToggleLike(ctx context.Context, postID string, userID uint) (bool, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	unlock := s.locks.Lock(postKey(postID))
	defer unlock()

	liked, err := s.likeRepo.HasUserLikedPost(postID, userID)
	if err != nil {
		return false, err
	}

	if liked {
		if err := s.likeRepo.DeleteLike(postID, userID); err != nil {
			return false, err
		}
		if err := s.postRepo.DecrementLikesCount(ctx, postID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.likeRepo.CreateLike(&models.Like{PostID: postID, UserID: userID}); err != nil {
		return false, err
	}
	if err := s.postRepo.IncrementLikesCount(ctx, postID); err != nil {
		return false, err
	}

	if post.UserID != userID {
		if err := s.notification.Notify(post.UserID, userID, user.Name, models.NotificationLike, postID, user.Name+" liked your post"); err != nil {
			log.Printf("like notification failed: %v", err)
		}
	}

	return true, nil
}

// IsLiked reports whether user has liked post. Unknown ids read as false.
func (s *InteractionService) IsLiked(ctx context.Context, postID string, userID uint) (bool, error) {
	return s.likeRepo.HasUserLikedPost(postID, userID)
}

// AddComment creates a comment with an author-name snapshot, bumps the
// post's comment counter and notifies the post owner. The owner is
// notified even for comments on their own post.
func (s *InteractionService) AddComment(ctx context.Context, postID string, userID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrValidation
	}

	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	unlock := s.locks.Lock(postKey(postID))
	defer unlock()

	comment := &models.Comment{
		PostID:     postID,
		UserID:     userID,
		AuthorName: user.Name,
		Content:    content,
	}
	if err := s.commentRepo.CreateComment(comment); err != nil {
		return nil, err
	}
	if err := s.postRepo.IncrementCommentsCount(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.notification.Notify(post.UserID, userID, user.Name, models.NotificationComment, postID, user.Name+" commented on your post"); err != nil {
		log.Printf("comment notification failed: %v", err)
	}

	return comment, nil
}

// DeleteComment removes a comment and decrements the parent post's comment
// counter exactly once. Author checks belong to the HTTP layer.
func (s *InteractionService) DeleteComment(ctx context.Context, commentID uint) error {
	comment, err := s.commentRepo.GetCommentByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if _, err := s.postRepo.GetPostByID(ctx, comment.PostID); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return ErrNotFound
		}
		return err
	}

	unlock := s.locks.Lock(postKey(comment.PostID))
	defer unlock()

	// The delete itself is the authoritative existence check: a concurrent
	// call that lost the race gets the not-found sentinel here and must not
	// decrement the counter a second time.
	if err := s.commentRepo.DeleteComment(commentID); err != nil {
		if errors.Is(err, repositories.ErrCommentNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.postRepo.DecrementCommentsCount(ctx, comment.PostID)
}

// GetComments returns a post's comments in creation order, empty if none
func (s *InteractionService) GetComments(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.commentRepo.GetCommentsByPostID(postID)
}
