package service

import "errors"

var (
	// ErrInvalidQuery wraps request validation failures.
	ErrInvalidQuery = errors.New("invalid request")
	// ErrDuplicateLink is returned when a profile with the same link is
	// already stored.
	ErrDuplicateLink = errors.New("profile already saved")
	// ErrProfileNotFound is returned when an operation targets an unknown
	// profile id.
	ErrProfileNotFound = errors.New("profile not found")
)
