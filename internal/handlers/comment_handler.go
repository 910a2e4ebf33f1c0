package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/salcho-dev/devlog/backend/internal/apperr"
	"github.com/salcho-dev/devlog/backend/internal/middleware"
	"github.com/salcho-dev/devlog/backend/internal/models"
	"github.com/salcho-dev/devlog/backend/internal/repositories"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
	userRepository    repositories.UserRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, userRepo repositories.UserRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
		userRepository:    userRepo,
	}
}

// RegisterPublicRoutes registers the anonymous-readable comment routes
func (h *CommentHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/posts/:id/comments", h.GetCommentsByPost)
}

// RegisterAuthRoutes registers the comment routes requiring authentication
func (h *CommentHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/comments", h.CreateComment)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// CreateComment appends a comment to a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	uid, _ := c.Get(middleware.ContextUIDKey).(string)
	if uid == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Verify post exists
	if _, err := h.postRepository.GetPostByID(c.Request().Context(), req.PostID); err != nil {
		if apperr.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comment := &models.Comment{
		PostID:     req.PostID,
		AuthorID:   uid,
		AuthorName: authorNameFromContext(c),
		Content:    req.Content,
	}

	id, err := h.commentRepository.AddComment(c.Request().Context(), comment)
	if err != nil {
		if apperr.IsInvalidArgument(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	comment.ID = id

	return c.JSON(http.StatusCreated, comment)
}

// GetCommentsByPost retrieves all comments for a post, oldest first
func (h *CommentHandler) GetCommentsByPost(c echo.Context) error {
	postID := c.Param("id")

	// Verify post exists
	if _, err := h.postRepository.GetPostByID(c.Request().Context(), postID); err != nil {
		if apperr.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comments, err := h.commentRepository.ListByPost(c.Request().Context(), postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, comments)
}

// DeleteComment removes a comment. Only the comment author or an admin may
// delete it.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	uid, _ := c.Get(middleware.ContextUIDKey).(string)
	if uid == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	comment, err := h.commentRepository.GetCommentByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if apperr.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if comment.AuthorID != uid && !h.isAdmin(c, uid) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this comment")
	}

	if err := h.commentRepository.DeleteComment(c.Request().Context(), comment.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CommentHandler) isAdmin(c echo.Context, uid string) bool {
	profile, err := h.userRepository.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return false
	}
	return profile.Role == models.RoleAdmin
}
