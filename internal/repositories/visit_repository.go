package repositories

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firestorepb "cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/salcho-dev/devlog/backend/internal/apperr"
	"github.com/salcho-dev/devlog/backend/internal/models"
)

const (
	dailyVisitorsCollection = "dailyVisitors"
	visitorsSubcollection   = "visitors"
)

// VisitRepository defines the interface for visit statistics operations
type VisitRepository interface {
	LogVisit(ctx context.Context, visitorID, path string) error
	VisitorStats(ctx context.Context) (*models.VisitorStats, error)
}

// FirestoreVisitRepository implements VisitRepository on Firestore. Visits
// live under dailyVisitors/{yyyy-mm-dd}/visitors/{visitorId}, so counting a
// day's unique visitors is a count over one subcollection.
type FirestoreVisitRepository struct {
	client *firestore.Client
	now    func() time.Time
}

// NewFirestoreVisitRepository creates a new FirestoreVisitRepository
func NewFirestoreVisitRepository(client *firestore.Client) *FirestoreVisitRepository {
	return &FirestoreVisitRepository{client: client, now: time.Now}
}

// dateKey returns the UTC day bucket, e.g. "2025-11-23"
func dateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// LogVisit upserts today's marker for a visitor. Repeat visits on the same
// day only refresh the timestamp and path.
func (r *FirestoreVisitRepository) LogVisit(ctx context.Context, visitorID, path string) error {
	if visitorID == "" {
		return fmt.Errorf("%w: visitor id is required", apperr.ErrInvalidArgument)
	}
	if path == "" {
		path = "/"
	}

	ref := r.client.Collection(dailyVisitorsCollection).
		Doc(dateKey(r.now())).
		Collection(visitorsSubcollection).
		Doc(visitorID)

	_, err := ref.Set(ctx, map[string]interface{}{
		"lastVisitAt": firestore.ServerTimestamp,
		"lastPath":    path,
	}, firestore.MergeAll)
	return err
}

// VisitorStats returns today's and yesterday's unique visitor counts
func (r *FirestoreVisitRepository) VisitorStats(ctx context.Context) (*models.VisitorStats, error) {
	now := r.now()

	today, err := r.countVisitors(ctx, dateKey(now))
	if err != nil {
		return nil, err
	}
	yesterday, err := r.countVisitors(ctx, dateKey(now.AddDate(0, 0, -1)))
	if err != nil {
		return nil, err
	}

	return &models.VisitorStats{Today: today, Yesterday: yesterday}, nil
}

func (r *FirestoreVisitRepository) countVisitors(ctx context.Context, key string) (int64, error) {
	col := r.client.Collection(dailyVisitorsCollection).Doc(key).Collection(visitorsSubcollection)

	res, err := col.NewAggregationQuery().WithCount("count").Get(ctx)
	if err != nil {
		return 0, err
	}
	v, ok := res["count"].(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("unexpected aggregation result for %s", key)
	}
	return v.GetIntegerValue(), nil
}
