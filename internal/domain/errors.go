package domain

import "errors"

var (
	// ErrNoProfile is returned when a transport token cannot be decoded
	// into a profile. The caller renders a recovery message, not a crash.
	ErrNoProfile = errors.New("no profile available")

	// ErrNoListings is returned when the job search stage, fallback
	// included, produced zero listings.
	ErrNoListings = errors.New("no job listings found")
)
