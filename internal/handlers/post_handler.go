package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/models"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/repositories"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// PostHandler handles HTTP requests related to recipe posts
type PostHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
	visibility     *services.VisibilityService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository, visibility *services.VisibilityService) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		userRepository: userRepo,
		visibility:     visibility,
	}
}

// RegisterPostRoutes registers post-related routes requiring authentication
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// RegisterPublicPostRoutes registers post routes that serve anonymous viewers
func (h *PostHandler) RegisterPublicPostRoutes(g *echo.Group) {
	g.GET("/posts/:id", h.GetPost)
	g.GET("/users/:id/posts", h.GetUserPosts)
}

// CreatePost creates a new recipe post
func (h *PostHandler) CreatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post := &models.Post{
		UserID:      currentUserID,
		Title:       req.Title,
		Content:     req.Content,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		Category:    req.Category,
		ImageURLs:   req.ImageURLs,
		VideoURL:    req.VideoURL,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a post by ID, honoring the author's privacy setting
func (h *PostHandler) GetPost(c echo.Context) error {
	postID := c.Param("id")

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if err == repositories.ErrPostNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	author, err := h.userRepository.GetUserByID(post.UserID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	viewerID := getUserIDFromContext(c)
	if !h.visibility.CanView(viewerID, author) {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	return c.JSON(http.StatusOK, post)
}

// GetUserPosts lists a user's posts, gated by their privacy setting
func (h *PostHandler) GetUserPosts(c echo.Context) error {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	target, err := h.userRepository.GetUserByID(uint(targetID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	viewerID := getUserIDFromContext(c)
	if !h.visibility.CanView(viewerID, target) {
		return echo.NewHTTPError(http.StatusForbidden, "This account is private")
	}

	posts, err := h.postRepository.GetPostsByUserID(c.Request().Context(), uint(targetID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, posts)
}

// UpdatePost updates an existing post. Only the author may update.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID := c.Param("id")

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if err == repositories.ErrPostNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if post.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the post author")
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if req.Ingredients != nil {
		post.Ingredients = req.Ingredients
	}
	if req.Steps != nil {
		post.Steps = req.Steps
	}
	if req.Category != "" {
		post.Category = req.Category
	}
	if req.ImageURLs != nil {
		post.ImageURLs = req.ImageURLs
	}
	if req.VideoURL != "" {
		post.VideoURL = req.VideoURL
	}
	post.UpdatedAt = time.Now()

	if err := h.postRepository.UpdatePost(c.Request().Context(), postID, post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post. Only the author may delete.
func (h *PostHandler) DeletePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID := c.Param("id")

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if err == repositories.ErrPostNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if post.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the post author")
	}

	if err := h.postRepository.DeletePost(c.Request().Context(), postID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
