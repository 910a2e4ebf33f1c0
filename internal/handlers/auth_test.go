package handlers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/salcho-dev/devlog/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCreatesProfileOnFirstLogin(t *testing.T) {
	users := newFakeUserRepo("owner@example.com")
	h := NewAuthHandler(users)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/auth/session", "")
	asUser(c, "u1", "reader@example.com")

	require.NoError(t, h.Session(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	profile := users.profiles["u1"]
	require.NotNil(t, profile)
	assert.Equal(t, models.RoleUser, profile.Role)
	assert.Equal(t, "reader@example.com", profile.Email)
}

func TestSessionDerivesAdminFromMasterEmail(t *testing.T) {
	users := newFakeUserRepo("owner@example.com")
	h := NewAuthHandler(users)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/auth/session", "")
	asUser(c, "admin-uid", "owner@example.com")

	require.NoError(t, h.Session(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RoleAdmin, users.profiles["admin-uid"].Role)
}

func TestSessionUpgradesExistingProfile(t *testing.T) {
	users := newFakeUserRepo("owner@example.com")
	users.profiles["admin-uid"] = &models.UserProfile{UID: "admin-uid", Email: "owner@example.com", Role: models.RoleUser}
	h := NewAuthHandler(users)

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/auth/session", "")
	asUser(c, "admin-uid", "owner@example.com")

	require.NoError(t, h.Session(c))
	assert.Equal(t, models.RoleAdmin, users.profiles["admin-uid"].Role)
}

func TestSessionRequiresEmailClaim(t *testing.T) {
	h := NewAuthHandler(newFakeUserRepo(""))

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/auth/session", "")
	asUser(c, "u1", "")

	err := h.Session(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestSessionRequiresAuthContext(t *testing.T) {
	h := NewAuthHandler(newFakeUserRepo(""))

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/auth/session", "")

	err := h.Session(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}
