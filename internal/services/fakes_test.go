package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/models"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the error contracts of the real
// Postgres/Mongo implementations (gorm.ErrRecordNotFound, ErrPostNotFound,
// underflow refusal) and are safe for concurrent use so the entity-lock
// discipline can be exercised from parallel goroutines.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[uint]*models.User)}
}

func (r *fakeUserRepo) CreateUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetUserByID(id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetUserByFirebaseUID(firebaseUID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.FirebaseUID == firebaseUID {
			clone := *user
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) UpdateUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) DeleteUser(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) SearchUsers(query string) ([]models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) adjust(userID uint, apply func(*models.User) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	return apply(user)
}

func (r *fakeUserRepo) IncrementFollowerCount(userID uint) error {
	return r.adjust(userID, func(u *models.User) error {
		u.FollowerCount++
		return nil
	})
}

func (r *fakeUserRepo) DecrementFollowerCount(userID uint) error {
	return r.adjust(userID, func(u *models.User) error {
		if u.FollowerCount == 0 {
			return fmt.Errorf("follower count underflow for user %d", userID)
		}
		u.FollowerCount--
		return nil
	})
}

func (r *fakeUserRepo) IncrementFollowingCount(userID uint) error {
	return r.adjust(userID, func(u *models.User) error {
		u.FollowingCount++
		return nil
	})
}

func (r *fakeUserRepo) DecrementFollowingCount(userID uint) error {
	return r.adjust(userID, func(u *models.User) error {
		if u.FollowingCount == 0 {
			return fmt.Errorf("following count underflow for user %d", userID)
		}
		u.FollowingCount--
		return nil
	})
}

type followEdge struct {
	follower uint
	followed uint
}

type fakeFollowRepo struct {
	mu    sync.Mutex
	edges map[followEdge]time.Time
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: make(map[followEdge]time.Time)}
}

func (r *fakeFollowRepo) CreateFollow(follow *models.Follow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := followEdge{follow.FollowerID, follow.FollowingID}
	if _, ok := r.edges[key]; ok {
		return fmt.Errorf("duplicate follow edge %d -> %d", follow.FollowerID, follow.FollowingID)
	}
	r.edges[key] = time.Now()
	return nil
}

func (r *fakeFollowRepo) DeleteFollow(followerID, followingID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := followEdge{followerID, followingID}
	if _, ok := r.edges[key]; !ok {
		return repositories.ErrFollowNotFound
	}
	delete(r.edges, key)
	return nil
}

func (r *fakeFollowRepo) IsFollowing(followerID, followingID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.edges[followEdge{followerID, followingID}]
	return ok, nil
}

func (r *fakeFollowRepo) GetFollowers(userID uint) ([]models.User, error) {
	return nil, nil
}

func (r *fakeFollowRepo) GetFollowing(userID uint) ([]models.User, error) {
	return nil, nil
}

func (r *fakeFollowRepo) GetFollowingIDs(userID uint) ([]uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []uint
	for edge := range r.edges {
		if edge.follower == userID {
			ids = append(ids, edge.followed)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

type likeKey struct {
	postID string
	userID uint
}

type fakeLikeRepo struct {
	mu    sync.Mutex
	likes map[likeKey]bool
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[likeKey]bool)}
}

func (r *fakeLikeRepo) CreateLike(like *models.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := likeKey{like.PostID, like.UserID}
	if r.likes[key] {
		return fmt.Errorf("duplicate like on post %s by user %d", like.PostID, like.UserID)
	}
	r.likes[key] = true
	return nil
}

func (r *fakeLikeRepo) DeleteLike(postID string, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := likeKey{postID, userID}
	if !r.likes[key] {
		return repositories.ErrLikeNotFound
	}
	delete(r.likes, key)
	return nil
}

func (r *fakeLikeRepo) HasUserLikedPost(postID string, userID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.likes[likeKey{postID, userID}], nil
}

func (r *fakeLikeRepo) GetLikesCountByPostID(postID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for key := range r.likes {
		if key.postID == postID {
			count++
		}
	}
	return count, nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	nextID   uint
	comments []*models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1}
}

func (r *fakeCommentRepo) CreateComment(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment.ID = r.nextID
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	r.nextID++
	clone := *comment
	r.comments = append(r.comments, &clone)
	return nil
}

func (r *fakeCommentRepo) GetCommentByID(id uint) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, comment := range r.comments {
		if comment.ID == id {
			clone := *comment
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCommentRepo) GetCommentsByPostID(postID string) ([]models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []models.Comment{}
	for _, comment := range r.comments {
		if comment.PostID == postID {
			result = append(result, *comment)
		}
	}
	return result, nil
}

func (r *fakeCommentRepo) UpdateComment(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.comments {
		if existing.ID == comment.ID {
			clone := *comment
			r.comments[i] = &clone
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeCommentRepo) DeleteComment(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, comment := range r.comments {
		if comment.ID == id {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			return nil
		}
	}
	return repositories.ErrCommentNotFound
}

type fakePostRepo struct {
	mu    sync.Mutex
	posts map[string]*models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*models.Post)}
}

func (r *fakePostRepo) CreatePost(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	clone := *post
	r.posts[post.ID.Hex()] = &clone
	return nil
}

func (r *fakePostRepo) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, repositories.ErrPostNotFound
	}
	clone := *post
	return &clone, nil
}

func (r *fakePostRepo) GetPostsByUserID(ctx context.Context, userID uint) ([]models.Post, error) {
	return r.filter(func(p *models.Post) bool { return p.UserID == userID }), nil
}

func (r *fakePostRepo) GetPostsByUserIDs(ctx context.Context, userIDs []uint) ([]models.Post, error) {
	owners := make(map[uint]bool, len(userIDs))
	for _, id := range userIDs {
		owners[id] = true
	}
	return r.filter(func(p *models.Post) bool { return owners[p.UserID] }), nil
}

func (r *fakePostRepo) GetAllPosts(ctx context.Context, skip, limit int64) ([]models.Post, error) {
	return r.filter(func(*models.Post) bool { return true }), nil
}

func (r *fakePostRepo) filter(keep func(*models.Post) bool) []models.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []models.Post{}
	for _, post := range r.posts {
		if keep(post) {
			result = append(result, *post)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result
}

func (r *fakePostRepo) UpdatePost(ctx context.Context, id string, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.posts[id]
	if !ok {
		return repositories.ErrPostNotFound
	}
	existing.Title = post.Title
	existing.Content = post.Content
	existing.UpdatedAt = time.Now()
	return nil
}

func (r *fakePostRepo) DeletePost(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return repositories.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) adjustCounter(postID string, field string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[postID]
	if !ok {
		return repositories.ErrPostNotFound
	}
	counter := &post.LikesCount
	if field == "comments_count" {
		counter = &post.CommentsCount
	}
	if delta < 0 && *counter == 0 {
		return fmt.Errorf("%s underflow on post %s", field, postID)
	}
	*counter += delta
	return nil
}

func (r *fakePostRepo) IncrementLikesCount(ctx context.Context, postID string) error {
	return r.adjustCounter(postID, "likes_count", 1)
}

func (r *fakePostRepo) DecrementLikesCount(ctx context.Context, postID string) error {
	return r.adjustCounter(postID, "likes_count", -1)
}

func (r *fakePostRepo) IncrementCommentsCount(ctx context.Context, postID string) error {
	return r.adjustCounter(postID, "comments_count", 1)
}

func (r *fakePostRepo) DecrementCommentsCount(ctx context.Context, postID string) error {
	return r.adjustCounter(postID, "comments_count", -1)
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	nextID        uint
	notifications []*models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (r *fakeNotificationRepo) CreateNotification(notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification.ID = r.nextID
	notification.CreatedAt = time.Now()
	r.nextID++
	clone := *notification
	r.notifications = append(r.notifications, &clone)
	return nil
}

func (r *fakeNotificationRepo) GetByID(id uint) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, notification := range r.notifications {
		if notification.ID == id {
			clone := *notification
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeNotificationRepo) byRecipient(recipientID uint, unreadOnly bool) []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []models.Notification{}
	for _, notification := range r.notifications {
		if notification.RecipientID != recipientID {
			continue
		}
		if unreadOnly && notification.IsRead {
			continue
		}
		result = append(result, *notification)
	}
	// newest first, matching the Postgres ORDER BY created_at DESC
	sort.SliceStable(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result
}

func (r *fakeNotificationRepo) GetByRecipientID(recipientID uint) ([]models.Notification, error) {
	return r.byRecipient(recipientID, false), nil
}

func (r *fakeNotificationRepo) GetUnreadByRecipientID(recipientID uint) ([]models.Notification, error) {
	return r.byRecipient(recipientID, true), nil
}

func (r *fakeNotificationRepo) GetUnreadCount(recipientID uint) (int64, error) {
	return int64(len(r.byRecipient(recipientID, true))), nil
}

func (r *fakeNotificationRepo) MarkAsRead(notificationID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, notification := range r.notifications {
		if notification.ID == notificationID && !notification.IsRead {
			notification.IsRead = true
			return true, nil
		}
	}
	return false, nil
}

// failingNotificationRepo refuses every write; used to prove notification
// failure never fails the triggering social action.
type failingNotificationRepo struct {
	fakeNotificationRepo
}

func (r *failingNotificationRepo) CreateNotification(notification *models.Notification) error {
	return fmt.Errorf("notification store unavailable")
}
