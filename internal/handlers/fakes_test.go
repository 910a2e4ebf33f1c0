package handlers

import (
	"context"
	"fmt"

	"github.com/salcho-dev/devlog/backend/internal/apperr"
	"github.com/salcho-dev/devlog/backend/internal/models"
)

// fakePostRepo is a minimal in-memory PostRepository for handler tests
type fakePostRepo struct {
	posts map[string]*models.Post

	page    *models.PostPage
	pageErr error

	lastPageSize int
	lastCursor   string
	lastTag      string
	viewIncs     map[string]int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		posts:    make(map[string]*models.Post),
		viewIncs: make(map[string]int),
	}
}

func (f *fakePostRepo) CreatePost(ctx context.Context, post *models.Post) (string, error) {
	if post.Title == "" || post.Content == "" || post.Category == "" || post.AuthorID == "" {
		return "", fmt.Errorf("%w: title, content, category and authorId are required", apperr.ErrInvalidArgument)
	}
	id := fmt.Sprintf("post-%d", len(f.posts)+1)
	post.ID = id
	f.posts[id] = post
	return id, nil
}

func (f *fakePostRepo) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	if post, ok := f.posts[id]; ok {
		return post, nil
	}
	return nil, fmt.Errorf("post %s: %w", id, apperr.ErrNotFound)
}

func (f *fakePostRepo) ListPublished(ctx context.Context, tag string) ([]models.Post, error) {
	out := []models.Post{}
	for _, p := range f.posts {
		if p.IsPublished {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) ListPublishedPage(ctx context.Context, pageSize int, cursor, tag string) (*models.PostPage, error) {
	f.lastPageSize, f.lastCursor, f.lastTag = pageSize, cursor, tag
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	if f.page != nil {
		return f.page, nil
	}
	return &models.PostPage{Items: []models.Post{}, IsEnd: true}, nil
}

func (f *fakePostRepo) UpdatePost(ctx context.Context, id string, req *models.UpdatePostRequest) error {
	post, ok := f.posts[id]
	if !ok {
		return fmt.Errorf("post %s: %w", id, apperr.ErrNotFound)
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
	}
	return nil
}

func (f *fakePostRepo) DeletePost(ctx context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return fmt.Errorf("post %s: %w", id, apperr.ErrNotFound)
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) IncrementViews(ctx context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return fmt.Errorf("post %s: %w", id, apperr.ErrNotFound)
	}
	f.viewIncs[id]++
	return nil
}

// fakeLikeRepo is a minimal in-memory LikeRepository for handler tests
type fakeLikeRepo struct {
	markers map[string]bool // postID/userID
	posts   *fakePostRepo
}

func newFakeLikeRepo(posts *fakePostRepo) *fakeLikeRepo {
	return &fakeLikeRepo{markers: make(map[string]bool), posts: posts}
}

func (f *fakeLikeRepo) key(postID, userID string) string { return postID + "/" + userID }

func (f *fakeLikeRepo) ToggleLike(ctx context.Context, postID, userID string) (*models.LikeResult, error) {
	if postID == "" || userID == "" {
		return nil, fmt.Errorf("%w: post id and user id are required", apperr.ErrInvalidArgument)
	}
	post, ok := f.posts.posts[postID]
	if !ok {
		return nil, fmt.Errorf("post %s: %w", postID, apperr.ErrNotFound)
	}
	k := f.key(postID, userID)
	if f.markers[k] {
		delete(f.markers, k)
		if post.Likes > 0 {
			post.Likes--
		}
		return &models.LikeResult{Liked: false, Likes: post.Likes}, nil
	}
	f.markers[k] = true
	post.Likes++
	return &models.LikeResult{Liked: true, Likes: post.Likes}, nil
}

func (f *fakeLikeRepo) HasUserLiked(ctx context.Context, postID, userID string) (bool, error) {
	if postID == "" || userID == "" {
		return false, fmt.Errorf("%w: post id and user id are required", apperr.ErrInvalidArgument)
	}
	return f.markers[f.key(postID, userID)], nil
}

// fakeCommentRepo is a minimal in-memory CommentRepository for handler tests
type fakeCommentRepo struct {
	comments map[string]*models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[string]*models.Comment)}
}

func (f *fakeCommentRepo) AddComment(ctx context.Context, comment *models.Comment) (string, error) {
	if comment.PostID == "" || comment.AuthorID == "" || comment.Content == "" {
		return "", fmt.Errorf("%w: postId, authorId and content are required", apperr.ErrInvalidArgument)
	}
	id := fmt.Sprintf("comment-%d", len(f.comments)+1)
	stored := *comment
	stored.ID = id
	f.comments[id] = &stored
	return id, nil
}

func (f *fakeCommentRepo) GetCommentByID(ctx context.Context, id string) (*models.Comment, error) {
	if comment, ok := f.comments[id]; ok {
		return comment, nil
	}
	return nil, fmt.Errorf("comment %s: %w", id, apperr.ErrNotFound)
}

func (f *fakeCommentRepo) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) DeleteComment(ctx context.Context, id string) error {
	if _, ok := f.comments[id]; !ok {
		return fmt.Errorf("comment %s: %w", id, apperr.ErrNotFound)
	}
	delete(f.comments, id)
	return nil
}

// fakeUserRepo is a minimal in-memory UserRepository for handler tests
type fakeUserRepo struct {
	profiles    map[string]*models.UserProfile
	masterEmail string
}

func newFakeUserRepo(masterEmail string) *fakeUserRepo {
	return &fakeUserRepo{profiles: make(map[string]*models.UserProfile), masterEmail: masterEmail}
}

func (f *fakeUserRepo) EnsureProfile(ctx context.Context, uid, email, displayName, photoURL string) (*models.UserProfile, error) {
	if uid == "" || email == "" {
		return nil, fmt.Errorf("%w: uid and email are required", apperr.ErrInvalidArgument)
	}
	if profile, ok := f.profiles[uid]; ok {
		if email == f.masterEmail && profile.Role != models.RoleAdmin {
			profile.Role = models.RoleAdmin
		}
		return profile, nil
	}
	role := models.RoleUser
	if f.masterEmail != "" && email == f.masterEmail {
		role = models.RoleAdmin
	}
	profile := &models.UserProfile{UID: uid, Email: email, Role: role, DisplayName: displayName, PhotoURL: photoURL}
	f.profiles[uid] = profile
	return profile, nil
}

func (f *fakeUserRepo) GetProfile(ctx context.Context, uid string) (*models.UserProfile, error) {
	if profile, ok := f.profiles[uid]; ok {
		return profile, nil
	}
	return nil, fmt.Errorf("profile %s: %w", uid, apperr.ErrNotFound)
}

// fakeVisitRepo records visit writes for handler tests
type fakeVisitRepo struct {
	visitorIDs []string
	paths      []string
	stats      models.VisitorStats
}

func (f *fakeVisitRepo) LogVisit(ctx context.Context, visitorID, path string) error {
	if visitorID == "" {
		return fmt.Errorf("%w: visitor id is required", apperr.ErrInvalidArgument)
	}
	f.visitorIDs = append(f.visitorIDs, visitorID)
	f.paths = append(f.paths, path)
	return nil
}

func (f *fakeVisitRepo) VisitorStats(ctx context.Context) (*models.VisitorStats, error) {
	return &f.stats, nil
}
