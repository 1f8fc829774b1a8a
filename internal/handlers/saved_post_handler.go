package handlers

import (
	"net/http"

	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/models"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// SavedPostHandler handles saved-recipe HTTP requests
type SavedPostHandler struct {
	savedPostRepository repositories.SavedPostRepository
	postRepository      repositories.PostRepository
}

// NewSavedPostHandler creates a new SavedPostHandler
func NewSavedPostHandler(savedPostRepo repositories.SavedPostRepository, postRepo repositories.PostRepository) *SavedPostHandler {
	return &SavedPostHandler{
		savedPostRepository: savedPostRepo,
		postRepository:      postRepo,
	}
}

// RegisterSavedPostRoutes registers saved-recipe routes
func (h *SavedPostHandler) RegisterSavedPostRoutes(g *echo.Group) {
	g.POST("/posts/:id/save", h.SavePost)
	g.DELETE("/posts/:id/save", h.UnsavePost)
	g.GET("/saved-posts", h.GetSavedPosts)
}

// SavePost saves a recipe for later. Saving twice is a no-op.
func (h *SavedPostHandler) SavePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID := c.Param("id")

	if _, err := h.postRepository.GetPostByID(c.Request().Context(), postID); err != nil {
		if err == repositories.ErrPostNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	saved, err := h.savedPostRepository.IsPostSaved(currentUserID, postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !saved {
		savedPost := &models.SavedPost{UserID: currentUserID, PostID: postID}
		if err := h.savedPostRepository.SavePost(savedPost); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"saved": true})
}

// UnsavePost removes a saved recipe. Unsaving twice is a no-op.
func (h *SavedPostHandler) UnsavePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID := c.Param("id")

	if err := h.savedPostRepository.UnsavePost(currentUserID, postID); err != nil {
		if err != repositories.ErrSavedPostNotFound {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"saved": false})
}

// GetSavedPosts lists the caller's saved recipes
func (h *SavedPostHandler) GetSavedPosts(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	savedPosts, err := h.savedPostRepository.GetSavedPostsByUser(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	posts := make([]models.Post, 0, len(savedPosts))
	for _, sp := range savedPosts {
		post, err := h.postRepository.GetPostByID(c.Request().Context(), sp.PostID)
		if err != nil {
			// Post deleted since it was saved, skip it
			continue
		}
		posts = append(posts, *post)
	}

	return c.JSON(http.StatusOK, posts)
}
