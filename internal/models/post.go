package models

import "time"

// Categories is the closed set of post categories. Extending it means adding
// the value here and to the oneof tags below.
var Categories = []string{"go", "javascript", "typescript", "vue", "react", "database", "travel", "other"}

// Post represents a blog article stored in the "posts" collection. The likes
// counter is only ever written by the like toggle transaction and views only
// by the atomic increment; neither is reachable through UpdatePostRequest.
type Post struct {
	ID           string    `json:"id" firestore:"-"`
	Title        string    `json:"title" firestore:"title"`
	Content      string    `json:"content" firestore:"content"`
	Summary      string    `json:"summary" firestore:"summary"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty" firestore:"thumbnailUrl,omitempty"`
	Category     string    `json:"category" firestore:"category"`
	Tags         []string  `json:"tags" firestore:"tags"`
	AuthorID     string    `json:"authorId" firestore:"authorId"`
	AuthorName   string    `json:"authorName,omitempty" firestore:"authorName"`
	Views        int64     `json:"views" firestore:"views"`
	Likes        int64     `json:"likes" firestore:"likes"`
	IsPublished  bool      `json:"isPublished" firestore:"isPublished"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// PostPage is one page of the published-post listing. IsEnd is true when the
// page came back short, meaning no further pages should be requested.
type PostPage struct {
	Items      []Post `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
	IsEnd      bool   `json:"isEnd"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title        string   `json:"title" validate:"required,min=1,max=200"`
	Content      string   `json:"content" validate:"required,min=1"`
	Summary      string   `json:"summary" validate:"omitempty,max=300"`
	ThumbnailURL string   `json:"thumbnailUrl" validate:"omitempty,url"`
	Category     string   `json:"category" validate:"required,oneof=go javascript typescript vue react database travel other"`
	Tags         []string `json:"tags" validate:"omitempty,dive,min=1,max=30"`
	IsPublished  *bool    `json:"isPublished"`
}

// UpdatePostRequest defines the request body for updating an existing post.
// Only supplied fields are merged; views and likes are deliberately absent so
// the counters cannot be overwritten past their protocols.
type UpdatePostRequest struct {
	Title        *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Content      *string  `json:"content" validate:"omitempty,min=1"`
	Summary      *string  `json:"summary" validate:"omitempty,max=300"`
	ThumbnailURL *string  `json:"thumbnailUrl" validate:"omitempty,url"`
	Category     *string  `json:"category" validate:"omitempty,oneof=go javascript typescript vue react database travel other"`
	Tags         []string `json:"tags" validate:"omitempty,dive,min=1,max=30"`
	IsPublished  *bool    `json:"isPublished"`
}
