package handlers

import (
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/salcho-dev/devlog/backend/internal/apperr"
	"github.com/salcho-dev/devlog/backend/internal/middleware"
	"github.com/salcho-dev/devlog/backend/internal/repositories"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository repositories.UserRepository
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository) *AuthHandler {
	return &AuthHandler{userRepository: userRepo}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/auth/session", h.Session)
}

// Session mirrors the verified Firebase identity into the users collection:
// the profile is created on first login and its role upgraded in place when
// the email matches the configured master address.
func (h *AuthHandler) Session(c echo.Context) error {
	uid, _ := c.Get(middleware.ContextUIDKey).(string)
	token, _ := c.Get(middleware.ContextTokenKey).(*auth.Token)
	if uid == "" || token == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	email := stringClaim(token.Claims, "email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ID token carries no email")
	}

	profile, err := h.userRepository.EnsureProfile(
		c.Request().Context(),
		uid,
		email,
		stringClaim(token.Claims, "name"),
		stringClaim(token.Claims, "picture"),
	)
	if err != nil {
		if apperr.IsInvalidArgument(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, profile)
}

func stringClaim(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
