package repositories

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/salcho-dev/devlog/backend/internal/apperr"
	"github.com/salcho-dev/devlog/backend/internal/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	ToggleLike(ctx context.Context, postID, userID string) (*models.LikeResult, error)
	HasUserLiked(ctx context.Context, postID, userID string) (bool, error)
}

// FirestoreLikeRepository implements LikeRepository on Firestore. The likes
// counter on the post document is written exclusively through ToggleLike.
type FirestoreLikeRepository struct {
	client *firestore.Client
}

// NewFirestoreLikeRepository creates a new FirestoreLikeRepository
func NewFirestoreLikeRepository(client *firestore.Client) *FirestoreLikeRepository {
	return &FirestoreLikeRepository{client: client}
}

// applyToggle computes the next like state from the current marker existence
// and counter value. The counter is clamped at zero so drift from writes
// outside this protocol can never push it negative.
func applyToggle(markerExists bool, likes int64) (liked bool, next int64) {
	if markerExists {
		if likes > 0 {
			likes--
		}
		return false, likes
	}
	return true, likes + 1
}

// ToggleLike flips the caller's like state on a post and keeps the aggregate
// counter in step. The marker read, counter read and both writes commit in
// one transaction; the client retries the whole body on conflict, so
// concurrent toggles on the same post serialize.
func (r *FirestoreLikeRepository) ToggleLike(ctx context.Context, postID, userID string) (*models.LikeResult, error) {
	if postID == "" || userID == "" {
		return nil, fmt.Errorf("%w: post id and user id are required", apperr.ErrInvalidArgument)
	}

	postRef := r.client.Collection(postsCollection).Doc(postID)
	markerRef := postRef.Collection(likesSubcollection).Doc(userID)

	var result models.LikeResult
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		postSnap, err := tx.Get(postRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("post %s: %w", postID, apperr.ErrNotFound)
			}
			return err
		}
		likes := likesFrom(postSnap)

		markerExists := true
		if _, err := tx.Get(markerRef); err != nil {
			if status.Code(err) != codes.NotFound {
				return err
			}
			markerExists = false
		}

		liked, next := applyToggle(markerExists, likes)
		if liked {
			if err := tx.Set(markerRef, &models.LikeMarker{}); err != nil {
				return err
			}
		} else {
			if err := tx.Delete(markerRef); err != nil {
				return err
			}
		}
		if err := tx.Update(postRef, []firestore.Update{{Path: "likes", Value: next}}); err != nil {
			return err
		}

		result = models.LikeResult{Liked: liked, Likes: next}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// HasUserLiked reports whether the like marker for (postID, userID) exists
func (r *FirestoreLikeRepository) HasUserLiked(ctx context.Context, postID, userID string) (bool, error) {
	if postID == "" || userID == "" {
		return false, fmt.Errorf("%w: post id and user id are required", apperr.ErrInvalidArgument)
	}

	_, err := r.client.Collection(postsCollection).Doc(postID).Collection(likesSubcollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// likesFrom reads the counter off a post snapshot, treating a missing field
// as zero.
func likesFrom(snap *firestore.DocumentSnapshot) int64 {
	v, err := snap.DataAt("likes")
	if err != nil {
		return 0
	}
	if n, ok := v.(int64); ok {
		return n
	}
	return 0
}
