package application

import "errors"

// Sentinel errors the handlers map onto HTTP statuses.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrDeviceNotFound     = errors.New("device not found")
	ErrForbidden          = errors.New("forbidden")
)
