package repositories

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/salcho-dev/devlog/backend/internal/apperr"
	"github.com/salcho-dev/devlog/backend/internal/models"
)

// pageToken pins a position in the published-post ordering. It carries the
// tag it was issued under so a cursor cannot be replayed against a different
// filter.
type pageToken struct {
	CreatedAt time.Time `json:"c"`
	ID        string    `json:"id"`
	Tag       string    `json:"t,omitempty"`
}

func encodePageToken(t pageToken) string {
	b, err := json.Marshal(t)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

func decodePageToken(cursor, tag string) (pageToken, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return pageToken{}, fmt.Errorf("%w: malformed cursor", apperr.ErrInvalidArgument)
	}

	var t pageToken
	if err := json.Unmarshal(raw, &t); err != nil {
		return pageToken{}, fmt.Errorf("%w: malformed cursor", apperr.ErrInvalidArgument)
	}
	if t.ID == "" || t.CreatedAt.IsZero() {
		return pageToken{}, fmt.Errorf("%w: malformed cursor", apperr.ErrInvalidArgument)
	}
	if t.Tag != tag {
		return pageToken{}, fmt.Errorf("%w: cursor was issued for a different filter", apperr.ErrInvalidArgument)
	}
	return t, nil
}

// buildPage assembles the page envelope from a fetch of up to pageSize+1
// items. The extra item only proves another page exists and is trimmed off;
// an empty page carries no cursor.
func buildPage(fetched []models.Post, pageSize int, tag string) *models.PostPage {
	items := fetched
	isEnd := true
	if len(fetched) > pageSize {
		items = fetched[:pageSize]
		isEnd = false
	}

	page := &models.PostPage{
		Items: items,
		IsEnd: isEnd,
	}
	if len(items) > 0 {
		last := items[len(items)-1]
		page.NextCursor = encodePageToken(pageToken{CreatedAt: last.CreatedAt, ID: last.ID, Tag: tag})
	}
	return page
}
