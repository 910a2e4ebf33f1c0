package repositories

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/salcho-dev/devlog/backend/internal/apperr"
	"github.com/salcho-dev/devlog/backend/internal/models"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const commentsCollection = "comments"

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	AddComment(ctx context.Context, comment *models.Comment) (string, error)
	GetCommentByID(ctx context.Context, id string) (*models.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

// FirestoreCommentRepository implements CommentRepository on Firestore
type FirestoreCommentRepository struct {
	client *firestore.Client
}

// NewFirestoreCommentRepository creates a new FirestoreCommentRepository
func NewFirestoreCommentRepository(client *firestore.Client) *FirestoreCommentRepository {
	return &FirestoreCommentRepository{client: client}
}

// AddComment appends a comment with a server-assigned creation timestamp
func (r *FirestoreCommentRepository) AddComment(ctx context.Context, comment *models.Comment) (string, error) {
	if comment.PostID == "" || comment.AuthorID == "" || comment.Content == "" {
		return "", fmt.Errorf("%w: postId, authorId and content are required", apperr.ErrInvalidArgument)
	}

	ref, _, err := r.client.Collection(commentsCollection).Add(ctx, comment)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

// GetCommentByID retrieves a comment by ID
func (r *FirestoreCommentRepository) GetCommentByID(ctx context.Context, id string) (*models.Comment, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: comment id is required", apperr.ErrInvalidArgument)
	}

	snap, err := r.client.Collection(commentsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("comment %s: %w", id, apperr.ErrNotFound)
		}
		return nil, err
	}

	var comment models.Comment
	if err := snap.DataTo(&comment); err != nil {
		return nil, err
	}
	comment.ID = snap.Ref.ID
	return &comment, nil
}

// ListByPost retrieves all comments for a post, oldest first
func (r *FirestoreCommentRepository) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	if postID == "" {
		return nil, fmt.Errorf("%w: post id is required", apperr.ErrInvalidArgument)
	}

	iter := r.client.Collection(commentsCollection).
		Where("postId", "==", postID).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	comments := []models.Comment{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var comment models.Comment
		if err := snap.DataTo(&comment); err != nil {
			return nil, err
		}
		comment.ID = snap.Ref.ID
		comments = append(comments, comment)
	}
	return comments, nil
}

// DeleteComment deletes a comment by ID
func (r *FirestoreCommentRepository) DeleteComment(ctx context.Context, id string) error {
	if _, err := r.GetCommentByID(ctx, id); err != nil {
		return err
	}
	_, err := r.client.Collection(commentsCollection).Doc(id).Delete(ctx)
	return err
}
