package models

import "time"

// LikeMarker lives at posts/{postID}/likes/{userID}; its existence encodes
// "this user currently likes this post".
type LikeMarker struct {
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// LikeResult is the outcome of one like toggle.
type LikeResult struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}
