package services

import "errors"

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrUserConflict       = errors.New("failed to create user")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
