package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/models"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/repositories"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/services"
	"github.com/labstack/echo/v4"
)

const trendingSize = 5

// FeedHandler assembles post listings for the home, following and trending feeds
type FeedHandler struct {
	postRepository      repositories.PostRepository
	userRepository      repositories.UserRepository
	followRepository    repositories.FollowRepository
	likeRepository      repositories.LikeRepository
	savedPostRepository repositories.SavedPostRepository
	visibility          *services.VisibilityService
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	followRepo repositories.FollowRepository,
	likeRepo repositories.LikeRepository,
	savedPostRepo repositories.SavedPostRepository,
	visibility *services.VisibilityService,
) *FeedHandler {
	return &FeedHandler{
		postRepository:      postRepo,
		userRepository:      userRepo,
		followRepository:    followRepo,
		likeRepository:      likeRepo,
		savedPostRepository: savedPostRepo,
		visibility:          visibility,
	}
}

// RegisterFeedRoutes registers feed routes. The home and trending feeds also
// serve anonymous viewers; the following feed requires authentication.
func (h *FeedHandler) RegisterFeedRoutes(public, protected *echo.Group) {
	public.GET("/feed", h.GetFeed)
	public.GET("/feed/trending", h.GetTrendingFeed)
	protected.GET("/feed/following", h.GetFollowingFeed)
}

// FeedPost decorates a post with its author and viewer-relative flags
type FeedPost struct {
	models.Post
	Author  models.UserCompact `json:"author"`
	IsLiked bool               `json:"is_liked"`
	IsSaved bool               `json:"is_saved"`
}

// GetFeed returns recent posts from accounts the viewer may see
func (h *FeedHandler) GetFeed(c echo.Context) error {
	viewerID := getUserIDFromContext(c)

	skip, _ := strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit < 1 || limit > 50 {
		limit = 20
	}

	posts, err := h.postRepository.GetAllPosts(c.Request().Context(), skip, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	visible := h.filterVisible(c, viewerID, posts)
	return c.JSON(http.StatusOK, h.enrichPosts(c, viewerID, visible))
}

// GetTrendingFeed returns the most engaged visible posts
func (h *FeedHandler) GetTrendingFeed(c echo.Context) error {
	viewerID := getUserIDFromContext(c)

	// Pull a wide window, then rank by engagement
	posts, err := h.postRepository.GetAllPosts(c.Request().Context(), 0, 200)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	visible := h.filterVisible(c, viewerID, posts)
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Engagement() > visible[j].Engagement()
	})
	if len(visible) > trendingSize {
		visible = visible[:trendingSize]
	}

	return c.JSON(http.StatusOK, h.enrichPosts(c, viewerID, visible))
}

// GetFollowingFeed returns recent posts from accounts the viewer follows
func (h *FeedHandler) GetFollowingFeed(c echo.Context) error {
	viewerID := getUserIDFromContext(c)
	if viewerID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	followingIDs, err := h.followRepository.GetFollowingIDs(viewerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if len(followingIDs) == 0 {
		return c.JSON(http.StatusOK, []FeedPost{})
	}

	posts, err := h.postRepository.GetPostsByUserIDs(c.Request().Context(), followingIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, h.enrichPosts(c, viewerID, posts))
}

// filterVisible keeps only posts whose author the viewer may see
func (h *FeedHandler) filterVisible(c echo.Context, viewerID uint, posts []models.Post) []models.Post {
	authorCache := make(map[uint]*models.User)
	visible := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		author, ok := authorCache[p.UserID]
		if !ok {
			author, _ = h.userRepository.GetUserByID(p.UserID)
			authorCache[p.UserID] = author
		}
		if h.visibility.CanView(viewerID, author) {
			visible = append(visible, p)
		}
	}
	return visible
}

func (h *FeedHandler) enrichPosts(c echo.Context, viewerID uint, posts []models.Post) []FeedPost {
	postIDs := make([]string, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID.Hex()
	}

	savedIDs := map[string]bool{}
	if viewerID != 0 {
		savedIDs, _ = h.savedPostRepository.GetSavedPostIDs(viewerID, postIDs)
	}

	authorCache := make(map[uint]models.UserCompact)
	enriched := make([]FeedPost, len(posts))
	for i, p := range posts {
		enriched[i] = FeedPost{Post: p}

		if author, ok := authorCache[p.UserID]; ok {
			enriched[i].Author = author
		} else if user, err := h.userRepository.GetUserByID(p.UserID); err == nil {
			compact := user.ToCompact()
			authorCache[p.UserID] = compact
			enriched[i].Author = compact
		}

		if viewerID != 0 {
			liked, _ := h.likeRepository.HasUserLikedPost(p.ID.Hex(), viewerID)
			enriched[i].IsLiked = liked
			enriched[i].IsSaved = savedIDs[p.ID.Hex()]
		}
	}
	return enriched
}
