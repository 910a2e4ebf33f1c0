package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/salcho-dev/devlog/backend/internal/apperr"
	"github.com/salcho-dev/devlog/backend/internal/middleware"
	"github.com/salcho-dev/devlog/backend/internal/repositories"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository) *LikeHandler {
	return &LikeHandler{likeRepository: likeRepo}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.ToggleLike)
	g.GET("/posts/:id/likes/status", h.GetLikeStatus)
}

// ToggleLike flips the caller's like state on a post. Two calls in a row
// restore the original state.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	uid, _ := c.Get(middleware.ContextUIDKey).(string)
	if uid == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	result, err := h.likeRepository.ToggleLike(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		if apperr.IsInvalidArgument(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if apperr.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetLikeStatus reports whether the authenticated user currently likes a post
func (h *LikeHandler) GetLikeStatus(c echo.Context) error {
	uid, _ := c.Get(middleware.ContextUIDKey).(string)
	if uid == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	liked, err := h.likeRepository.HasUserLiked(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		if apperr.IsInvalidArgument(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"postId": c.Param("id"), "liked": liked})
}
