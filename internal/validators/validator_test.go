package validators

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/salcho-dev/devlog/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreatePostRequest(t *testing.T) {
	v := NewValidator()

	valid := models.CreatePostRequest{Title: "t", Content: "c", Category: "go"}
	assert.NoError(t, v.Validate(valid))

	missing := models.CreatePostRequest{Title: "t", Category: "go"}
	err := v.Validate(missing)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)

	badCategory := models.CreatePostRequest{Title: "t", Content: "c", Category: "gardening"}
	assert.Error(t, v.Validate(badCategory))
}
