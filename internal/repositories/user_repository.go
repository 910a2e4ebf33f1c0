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

const usersCollection = "users"

// UserRepository defines the interface for user profile data operations
type UserRepository interface {
	EnsureProfile(ctx context.Context, uid, email, displayName, photoURL string) (*models.UserProfile, error)
	GetProfile(ctx context.Context, uid string) (*models.UserProfile, error)
}

// FirestoreUserRepository implements UserRepository on Firestore
type FirestoreUserRepository struct {
	client      *firestore.Client
	masterEmail string
}

// NewFirestoreUserRepository creates a new FirestoreUserRepository
func NewFirestoreUserRepository(client *firestore.Client, masterEmail string) *FirestoreUserRepository {
	return &FirestoreUserRepository{client: client, masterEmail: masterEmail}
}

// roleForEmail derives the profile role from the configured master address
func roleForEmail(email, masterEmail string) models.UserRole {
	if masterEmail != "" && email == masterEmail {
		return models.RoleAdmin
	}
	return models.RoleUser
}

// EnsureProfile creates the profile on first login, or upgrades an existing
// profile to admin in place when its email matches the master address.
// Roles are never downgraded here.
func (r *FirestoreUserRepository) EnsureProfile(ctx context.Context, uid, email, displayName, photoURL string) (*models.UserProfile, error) {
	if uid == "" || email == "" {
		return nil, fmt.Errorf("%w: uid and email are required", apperr.ErrInvalidArgument)
	}

	ref := r.client.Collection(usersCollection).Doc(uid)
	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) != codes.NotFound {
			return nil, err
		}
		profile := &models.UserProfile{
			UID:         uid,
			Email:       email,
			Role:        roleForEmail(email, r.masterEmail),
			DisplayName: displayName,
			PhotoURL:    photoURL,
		}
		if _, err := ref.Set(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}

	var profile models.UserProfile
	if err := snap.DataTo(&profile); err != nil {
		return nil, err
	}
	if roleForEmail(email, r.masterEmail) == models.RoleAdmin && profile.Role != models.RoleAdmin {
		if _, err := ref.Update(ctx, []firestore.Update{{Path: "role", Value: models.RoleAdmin}}); err != nil {
			return nil, err
		}
		profile.Role = models.RoleAdmin
	}
	return &profile, nil
}

// GetProfile retrieves the profile for a uid
func (r *FirestoreUserRepository) GetProfile(ctx context.Context, uid string) (*models.UserProfile, error) {
	if uid == "" {
		return nil, fmt.Errorf("%w: uid is required", apperr.ErrInvalidArgument)
	}

	snap, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("profile %s: %w", uid, apperr.ErrNotFound)
		}
		return nil, err
	}

	var profile models.UserProfile
	if err := snap.DataTo(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
