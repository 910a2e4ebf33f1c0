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

const (
	postsCollection    = "posts"
	likesSubcollection = "likes"
	defaultPageSize    = 10
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) (string, error)
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	ListPublished(ctx context.Context, tag string) ([]models.Post, error)
	ListPublishedPage(ctx context.Context, pageSize int, cursor, tag string) (*models.PostPage, error)
	UpdatePost(ctx context.Context, id string, req *models.UpdatePostRequest) error
	DeletePost(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
}

// FirestorePostRepository implements PostRepository on Firestore
type FirestorePostRepository struct {
	client *firestore.Client
}

// NewFirestorePostRepository creates a new FirestorePostRepository
func NewFirestorePostRepository(client *firestore.Client) *FirestorePostRepository {
	return &FirestorePostRepository{client: client}
}

// CreatePost creates a new post document. Timestamps are assigned by the
// store at commit time via the serverTimestamp tags, never the client clock.
func (r *FirestorePostRepository) CreatePost(ctx context.Context, post *models.Post) (string, error) {
	if post.Title == "" || post.Content == "" || post.Category == "" || post.AuthorID == "" {
		return "", fmt.Errorf("%w: title, content, category and authorId are required", apperr.ErrInvalidArgument)
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	ref, _, err := r.client.Collection(postsCollection).Add(ctx, post)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

// GetPostByID retrieves a post by ID without any visibility filtering
func (r *FirestorePostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: post id is required", apperr.ErrInvalidArgument)
	}

	snap, err := r.client.Collection(postsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("post %s: %w", id, apperr.ErrNotFound)
		}
		return nil, err
	}

	var post models.Post
	if err := snap.DataTo(&post); err != nil {
		return nil, err
	}
	post.ID = snap.Ref.ID
	return &post, nil
}

// publishedQuery is the shared public listing contract: published posts only,
// optionally filtered by a single tag, newest first.
func (r *FirestorePostRepository) publishedQuery(tag string) firestore.Query {
	q := r.client.Collection(postsCollection).Query.Where("isPublished", "==", true)
	if tag != "" {
		q = q.Where("tags", "array-contains", tag)
	}
	return q.OrderBy("createdAt", firestore.Desc)
}

// ListPublished retrieves all published posts, newest first
func (r *FirestorePostRepository) ListPublished(ctx context.Context, tag string) ([]models.Post, error) {
	iter := r.publishedQuery(tag).Documents(ctx)
	defer iter.Stop()

	posts := []models.Post{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var post models.Post
		if err := snap.DataTo(&post); err != nil {
			return nil, err
		}
		post.ID = snap.Ref.ID
		posts = append(posts, post)
	}
	return posts, nil
}

// ListPublishedPage retrieves one fixed-size page of published posts. The
// cursor must come from an earlier page fetched under the same tag filter;
// cursors issued for a different filter are rejected.
func (r *FirestorePostRepository) ListPublishedPage(ctx context.Context, pageSize int, cursor, tag string) (*models.PostPage, error) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	// Document ID is the explicit tie-breaker so the cursor names exactly
	// one position even if two posts share a createdAt.
	q := r.publishedQuery(tag).OrderBy(firestore.DocumentID, firestore.Desc)
	if cursor != "" {
		token, err := decodePageToken(cursor, tag)
		if err != nil {
			return nil, err
		}
		q = q.StartAfter(token.CreatedAt, token.ID)
	}

	// Fetch one extra document so the end of the listing is observable
	// without a wasted follow-up page.
	iter := q.Limit(pageSize + 1).Documents(ctx)
	defer iter.Stop()

	items := []models.Post{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var post models.Post
		if err := snap.DataTo(&post); err != nil {
			return nil, err
		}
		post.ID = snap.Ref.ID
		items = append(items, post)
	}

	return buildPage(items, pageSize, tag), nil
}

// UpdatePost merges only the supplied fields and refreshes the update
// timestamp. The counters are not reachable from UpdatePostRequest.
func (r *FirestorePostRepository) UpdatePost(ctx context.Context, id string, req *models.UpdatePostRequest) error {
	if id == "" {
		return fmt.Errorf("%w: post id is required", apperr.ErrInvalidArgument)
	}

	updates := []firestore.Update{}
	if req.Title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: *req.Title})
	}
	if req.Content != nil {
		updates = append(updates, firestore.Update{Path: "content", Value: *req.Content})
	}
	if req.Summary != nil {
		updates = append(updates, firestore.Update{Path: "summary", Value: *req.Summary})
	}
	if req.ThumbnailURL != nil {
		updates = append(updates, firestore.Update{Path: "thumbnailUrl", Value: *req.ThumbnailURL})
	}
	if req.Category != nil {
		updates = append(updates, firestore.Update{Path: "category", Value: *req.Category})
	}
	if req.Tags != nil {
		updates = append(updates, firestore.Update{Path: "tags", Value: req.Tags})
	}
	if req.IsPublished != nil {
		updates = append(updates, firestore.Update{Path: "isPublished", Value: *req.IsPublished})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	_, err := r.client.Collection(postsCollection).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("post %s: %w", id, apperr.ErrNotFound)
	}
	return err
}

// DeletePost removes the post document. Comments and like markers are not
// cascade-deleted.
func (r *FirestorePostRepository) DeletePost(ctx context.Context, id string) error {
	if _, err := r.GetPostByID(ctx, id); err != nil {
		return err
	}
	_, err := r.client.Collection(postsCollection).Doc(id).Delete(ctx)
	return err
}

// IncrementViews adds 1 to the view counter with the store's atomic
// increment, so concurrent viewers cannot lose updates.
func (r *FirestorePostRepository) IncrementViews(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: post id is required", apperr.ErrInvalidArgument)
	}

	_, err := r.client.Collection(postsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "views", Value: firestore.Increment(1)},
	})
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("post %s: %w", id, apperr.ErrNotFound)
	}
	return err
}
