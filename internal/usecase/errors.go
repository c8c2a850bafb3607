package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrUnexpectedShape marks a provider response that decoded but lacks
	// the fields a screen needs.
	ErrUnexpectedShape = errors.New("unexpected response format")
)
