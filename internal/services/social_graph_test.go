package services

import (
	"context"
	"sync"
	"testing"

	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	users         *fakeUserRepo
	follows       *fakeFollowRepo
	likes         *fakeLikeRepo
	comments      *fakeCommentRepo
	posts         *fakePostRepo
	notifications *fakeNotificationRepo

	notify       *NotificationService
	graph        *SocialGraphService
	interactions *InteractionService
	visibility   *VisibilityService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:         newFakeUserRepo(),
		follows:       newFakeFollowRepo(),
		likes:         newFakeLikeRepo(),
		comments:      newFakeCommentRepo(),
		posts:         newFakePostRepo(),
		notifications: newFakeNotificationRepo(),
	}
	env.notify = NewNotificationService(env.notifications)
	env.graph = NewSocialGraphService(env.users, env.follows, env.notify)
	env.interactions = NewInteractionService(env.posts, env.users, env.likes, env.comments, env.notify)
	env.visibility = NewVisibilityService(env.follows)
	return env
}

func (env *testEnv) addUser(t *testing.T, name string, private bool) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: name + "@cooksync.test", IsPrivate: private}
	require.NoError(t, env.users.CreateUser(user))
	return user
}

func (env *testEnv) addPost(t *testing.T, ownerID uint) *models.Post {
	t.Helper()
	post := &models.Post{UserID: ownerID, Title: "Pad Thai", Content: "Soak the noodles first."}
	require.NoError(t, env.posts.CreatePost(context.Background(), post))
	return post
}

func (env *testEnv) mustGetUser(t *testing.T, id uint) *models.User {
	t.Helper()
	user, err := env.users.GetUserByID(id)
	require.NoError(t, err)
	return user
}

func TestFollowUpdatesCountersAndNotifies(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.addUser(t, "alice", false)
	bob := env.addUser(t, "bob", false)

	require.NoError(t, env.graph.Follow(ctx, bob.ID, alice.ID))

	following, err := env.graph.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, following)

	assert.Equal(t, 1, env.mustGetUser(t, alice.ID).FollowerCount)
	assert.Equal(t, 1, env.mustGetUser(t, bob.ID).FollowingCount)

	notifications, err := env.notify.ListForRecipient(alice.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationFollow, notifications[0].Kind)
	assert.Equal(t, bob.ID, notifications[0].SenderID)
	assert.Equal(t, "bob", notifications[0].SenderName)
	assert.Empty(t, notifications[0].RelatedPostID)
	assert.False(t, notifications[0].IsRead)
}

func TestFollowIsIdempotent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.addUser(t, "alice", false)
	bob := env.addUser(t, "bob", false)

	require.NoError(t, env.graph.Follow(ctx, bob.ID, alice.ID))
	require.NoError(t, env.graph.Follow(ctx, bob.ID, alice.ID))

	assert.Equal(t, 1, env.mustGetUser(t, alice.ID).FollowerCount)
	assert.Equal(t, 1, env.mustGetUser(t, bob.ID).FollowingCount)

	notifications, err := env.notify.ListForRecipient(alice.ID)
	require.NoError(t, err)
	assert.Len(t, notifications, 1, "second follow must not fan out again")
}

func TestFollowRejectsSelfAndUnknownUsers(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.addUser(t, "alice", false)

	assert.ErrorIs(t, env.graph.Follow(ctx, alice.ID, alice.ID), ErrSelfFollow)
	assert.ErrorIs(t, env.graph.Follow(ctx, alice.ID, 999), ErrNotFound)
	assert.ErrorIs(t, env.graph.Follow(ctx, 999, alice.ID), ErrNotFound)
}

func TestFollowUnfollowRoundTrip(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.addUser(t, "alice", false)
	bob := env.addUser(t, "bob", false)

	require.NoError(t, env.graph.Follow(ctx, bob.ID, alice.ID))
	require.NoError(t, env.graph.Unfollow(ctx, bob.ID, alice.ID))

	following, err := env.graph.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, following)
	assert.Equal(t, 0, env.mustGetUser(t, alice.ID).FollowerCount)
	assert.Equal(t, 0, env.mustGetUser(t, bob.ID).FollowingCount)
}

func TestUnfollowWhenNotFollowingIsNoOp(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.addUser(t, "alice", false)
	bob := env.addUser(t, "bob", false)

	require.NoError(t, env.graph.Unfollow(ctx, bob.ID, alice.ID))
	assert.Equal(t, 0, env.mustGetUser(t, alice.ID).FollowerCount)
	assert.Equal(t, 0, env.mustGetUser(t, bob.ID).FollowingCount)
}

func TestUnfollowKeepsEarlierNotification(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.addUser(t, "alice", false)
	bob := env.addUser(t, "bob", false)

	require.NoError(t, env.graph.Follow(ctx, bob.ID, alice.ID))
	require.NoError(t, env.graph.Unfollow(ctx, bob.ID, alice.ID))

	notifications, err := env.notify.ListForRecipient(alice.ID)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestIsFollowingToleratesUnknownIDs(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	following, err := env.graph.IsFollowing(ctx, 42, 43)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowSurvivesNotificationFailure(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.addUser(t, "alice", false)
	bob := env.addUser(t, "bob", false)

	broken := NewNotificationService(&failingNotificationRepo{})
	graph := NewSocialGraphService(env.users, env.follows, broken)

	require.NoError(t, graph.Follow(ctx, bob.ID, alice.ID))

	following, err := graph.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, following)
	assert.Equal(t, 1, env.mustGetUser(t, alice.ID).FollowerCount)
}

func TestConcurrentFollowSamePairIncrementsOnce(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.addUser(t, "alice", false)
	bob := env.addUser(t, "bob", false)

	const callers = 16
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			_ = env.graph.Follow(ctx, bob.ID, alice.ID)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, env.mustGetUser(t, alice.ID).FollowerCount)
	assert.Equal(t, 1, env.mustGetUser(t, bob.ID).FollowingCount)

	notifications, err := env.notify.ListForRecipient(alice.ID)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestConcurrentFollowDistinctPairsNoLostUpdate(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	target := env.addUser(t, "chef", false)

	const followers = 12
	ids := make([]uint, followers)
	for i := range ids {
		ids[i] = env.addUser(t, "fan", false).ID
	}

	var wg sync.WaitGroup
	wg.Add(followers)
	for _, id := range ids {
		go func(actorID uint) {
			defer wg.Done()
			_ = env.graph.Follow(ctx, actorID, target.ID)
		}(id)
	}
	wg.Wait()

	assert.Equal(t, followers, env.mustGetUser(t, target.ID).FollowerCount)
}
