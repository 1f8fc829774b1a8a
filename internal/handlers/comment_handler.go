package handlers

import (
	"net/http"
	"strconv"

	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/models"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/repositories"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	interactions      *services.InteractionService
	commentRepository repositories.CommentRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(interactions *services.InteractionService, commentRepo repositories.CommentRepository) *CommentHandler {
	return &CommentHandler{
		interactions:      interactions,
		commentRepository: commentRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:id/comments", h.CreateComment)
	g.PUT("/comments/:id", h.UpdateComment)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// RegisterPublicCommentRoutes registers comment listing for anonymous viewers
func (h *CommentHandler) RegisterPublicCommentRoutes(g *echo.Group) {
	g.GET("/posts/:id/comments", h.GetComments)
}

// CreateComment adds a comment to a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID := c.Param("id")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.interactions.AddComment(c.Request().Context(), postID, currentUserID, req.Content)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetComments lists a post's comments in creation order
func (h *CommentHandler) GetComments(c echo.Context) error {
	postID := c.Param("id")

	comments, err := h.interactions.GetComments(c.Request().Context(), postID)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, comments)
}

// UpdateComment edits a comment's content. Only the author may edit.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentRepository.GetCommentByID(uint(commentID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if comment.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the comment author")
	}

	comment.Content = req.Content
	if err := h.commentRepository.UpdateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, comment)
}

// DeleteComment removes a comment. Only the author may delete.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	comment, err := h.commentRepository.GetCommentByID(uint(commentID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if comment.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the comment author")
	}

	if err := h.interactions.DeleteComment(c.Request().Context(), uint(commentID)); err != nil {
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
