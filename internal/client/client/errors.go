package client

import "errors"

var (
	// ErrUnavailable marks transient failures: the attempt may be retried.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized means the access token was missing, invalid or expired.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidRequest means the server refused the request shape; retrying
	// the same request will not help.
	ErrInvalidRequest = errors.New("invalid request")
)
