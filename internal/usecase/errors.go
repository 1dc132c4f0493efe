package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnknownTeam           = errors.New("unknown team")
	ErrAlreadyInState        = errors.New("already in requested state")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrStorageUnavailable    = errors.New("storage unavailable")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
