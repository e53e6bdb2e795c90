package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrNotJoinable reports a join attempt against a request that is no
	// longer Open. Raised before any network call is issued.
	ErrNotJoinable = errors.New("request is not open for joining")

	// ErrRatingNotAllowed reports a rating attempt before play time or for a
	// participant who was never confirmed. Raised before any network call.
	ErrRatingNotAllowed = errors.New("rating is not allowed yet")
)
