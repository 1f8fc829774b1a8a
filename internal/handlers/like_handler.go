package handlers

import (
	"net/http"

	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/repositories"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles like/unlike HTTP requests
type LikeHandler struct {
	interactions   *services.InteractionService
	likeRepository repositories.LikeRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(interactions *services.InteractionService, likeRepo repositories.LikeRepository) *LikeHandler {
	return &LikeHandler{
		interactions:   interactions,
		likeRepository: likeRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.ToggleLike)
	g.GET("/posts/:id/like", h.GetLikeStatus)
}

// ToggleLike flips the caller's like on a post and returns the new state
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID := c.Param("id")

	liked, err := h.interactions.ToggleLike(c.Request().Context(), postID, currentUserID)
	if err != nil {
		return serviceError(err)
	}

	count, err := h.likeRepository.GetLikesCountByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"liked": liked, "likes_count": count})
}

// GetLikeStatus reports whether the caller has liked the post, plus the count
func (h *LikeHandler) GetLikeStatus(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	postID := c.Param("id")

	liked := false
	if currentUserID != 0 {
		var err error
		liked, err = h.interactions.IsLiked(c.Request().Context(), postID, currentUserID)
		if err != nil {
			return serviceError(err)
		}
	}

	count, err := h.likeRepository.GetLikesCountByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"liked": liked, "likes_count": count})
}
