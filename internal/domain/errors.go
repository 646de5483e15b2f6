package domain

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrEmailTaken        = errors.New("email already taken")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrHealthLogNotFound = errors.New("health log not found")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWeakPassword       = errors.New("weak password")
	ErrPasswordTooLong    = errors.New("password too long")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")

	ErrNotEnoughData = errors.New("not enough data")
	ErrInvalidInput  = errors.New("invalid input")
)
