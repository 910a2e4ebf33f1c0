// Package apperr defines the error taxonomy shared by repositories and
// handlers. Repositories wrap these sentinels; handlers translate them to
// HTTP status codes.
package apperr

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// IsNotFound reports whether err is the NotFound sentinel or a not-found
// status surfaced by the Firestore client.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || status.Code(err) == codes.NotFound
}

// IsInvalidArgument reports whether err was rejected before reaching the store.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
