package handlers

import (
	"net/http"
	"testing"

	"github.com/salcho-dev/devlog/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogVisitMintsVisitorCookie(t *testing.T) {
	repo := &fakeVisitRepo{}
	h := NewVisitHandler(repo)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/visits", `{"path":"/posts/abc"}`)

	require.NoError(t, h.LogVisit(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	require.Len(t, repo.visitorIDs, 1)
	assert.NotEmpty(t, repo.visitorIDs[0])
	assert.Equal(t, "/posts/abc", repo.paths[0])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, visitorCookieName, cookies[0].Name)
	assert.Equal(t, repo.visitorIDs[0], cookies[0].Value)
}

func TestLogVisitReusesExistingCookie(t *testing.T) {
	repo := &fakeVisitRepo{}
	h := NewVisitHandler(repo)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/visits", `{}`)
	c.Request().AddCookie(&http.Cookie{Name: visitorCookieName, Value: "visitor-42"})

	require.NoError(t, h.LogVisit(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	require.Len(t, repo.visitorIDs, 1)
	assert.Equal(t, "visitor-42", repo.visitorIDs[0])
	assert.Empty(t, rec.Result().Cookies())
}

func TestGetVisitorStats(t *testing.T) {
	repo := &fakeVisitRepo{stats: models.VisitorStats{Today: 12, Yesterday: 7}}
	h := NewVisitHandler(repo)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/stats/visitors", "")

	require.NoError(t, h.GetVisitorStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"today":12,"yesterday":7}`, rec.Body.String())
}
