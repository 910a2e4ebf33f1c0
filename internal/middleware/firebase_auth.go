package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/salcho-dev/devlog/backend/internal/apperr"
	"github.com/salcho-dev/devlog/backend/internal/models"
	"github.com/salcho-dev/devlog/backend/internal/repositories"
)

// Context keys set by FirebaseAuthMiddleware
const (
	ContextUIDKey   = "firebaseUID"
	ContextTokenKey = "firebaseToken"
)

// FirebaseAuthMiddleware creates an Echo middleware to verify Firebase ID tokens
func FirebaseAuthMiddleware(authClient *auth.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is missing")
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header must be in Bearer format")
			}

			token, err := authClient.VerifyIDToken(c.Request().Context(), tokenParts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("Invalid or expired ID token: %v", err))
			}

			c.Set(ContextUIDKey, token.UID)
			c.Set(ContextTokenKey, token)

			return next(c)
		}
	}
}

// RequireAdmin creates a middleware that only lets profiles with the admin
// role through. It must run after FirebaseAuthMiddleware.
func RequireAdmin(userRepo repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get(ContextUIDKey).(string)
			if !ok || uid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			profile, err := userRepo.GetProfile(c.Request().Context(), uid)
			if err != nil {
				if apperr.IsNotFound(err) {
					return echo.NewHTTPError(http.StatusForbidden, "No profile for this account")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}
			if profile.Role != models.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "Admin role required")
			}

			return next(c)
		}
	}
}
