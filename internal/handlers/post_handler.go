package handlers

import (
	"net/http"
	"strconv"

	"firebase.google.com/go/v4/auth"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/salcho-dev/devlog/backend/internal/apperr"
	"github.com/salcho-dev/devlog/backend/internal/middleware"
	"github.com/salcho-dev/devlog/backend/internal/models"
	"github.com/salcho-dev/devlog/backend/internal/repositories"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository) *PostHandler {
	return &PostHandler{postRepository: postRepo}
}

// RegisterPublicRoutes registers the anonymous-readable post routes
func (h *PostHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/posts", h.ListPosts)
	g.GET("/posts/:id", h.GetPost)
	g.POST("/posts/:id/views", h.IncrementViews)
	g.GET("/posts/:id/likes/count", h.GetLikesCount)
}

// RegisterAdminRoutes registers the write routes, admin only
func (h *PostHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// CreatePost creates a new post
func (h *PostHandler) CreatePost(c echo.Context) error {
	uid, _ := c.Get(middleware.ContextUIDKey).(string)
	if uid == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	post := &models.Post{
		Title:        req.Title,
		Content:      req.Content,
		Summary:      req.Summary,
		ThumbnailURL: req.ThumbnailURL,
		Category:     req.Category,
		Tags:         req.Tags,
		AuthorID:     uid,
		AuthorName:   authorNameFromContext(c),
		IsPublished:  isPublished,
	}

	id, err := h.postRepository.CreatePost(c.Request().Context(), post)
	if err != nil {
		if apperr.IsInvalidArgument(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// GetPost retrieves a post by ID, without visibility filtering
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if apperr.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, post)
}

// ListPosts retrieves one page of published posts, newest first, optionally
// filtered by a single tag
func (h *PostHandler) ListPosts(c echo.Context) error {
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	cursor := c.QueryParam("cursor")
	tag := c.QueryParam("tag")

	page, err := h.postRepository.ListPublishedPage(c.Request().Context(), pageSize, cursor, tag)
	if err != nil {
		if apperr.IsInvalidArgument(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, page)
}

// IncrementViews atomically bumps a post's view counter
func (h *PostHandler) IncrementViews(c echo.Context) error {
	if err := h.postRepository.IncrementViews(c.Request().Context(), c.Param("id")); err != nil {
		if apperr.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

// GetLikesCount returns the aggregate like counter from the post document
func (h *PostHandler) GetLikesCount(c echo.Context) error {
	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if apperr.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"postId": post.ID, "likes": post.Likes})
}

// UpdatePost merges the supplied fields into an existing post
func (h *PostHandler) UpdatePost(c echo.Context) error {
	postID := c.Param("id")

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.postRepository.UpdatePost(c.Request().Context(), postID, &req); err != nil {
		if apperr.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		if apperr.IsInvalidArgument(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, post)
}

// DeletePost removes a post; comments and like markers are left in place
func (h *PostHandler) DeletePost(c echo.Context) error {
	if err := h.postRepository.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		if apperr.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

// authorNameFromContext pulls a display name off the verified token, falling
// back to the email.
func authorNameFromContext(c echo.Context) string {
	token, _ := c.Get(middleware.ContextTokenKey).(*auth.Token)
	if token == nil {
		return ""
	}
	if name := stringClaim(token.Claims, "name"); name != "" {
		return name
	}
	return stringClaim(token.Claims, "email")
}
