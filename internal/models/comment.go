package models

import "time"

// Comment represents a comment on a post, stored in the "comments" collection
type Comment struct {
	ID         string    `json:"id" firestore:"-"`
	PostID     string    `json:"postId" firestore:"postId"`
	AuthorID   string    `json:"authorId" firestore:"authorId"`
	AuthorName string    `json:"authorName,omitempty" firestore:"authorName"`
	Content    string    `json:"content" firestore:"content"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	PostID  string `json:"postId" validate:"required"`
	Content string `json:"content" validate:"required,min=1,max=1000"`
}
