package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound     = errors.New("not found")
	ErrDuplicateStamp = errors.New("duplicate stamp")

	// service specific errors
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// pending queue: state transition attempted on an entry that is no longer unsynced
	ErrInvalidTransition = errors.New("invalid state transition")
)
