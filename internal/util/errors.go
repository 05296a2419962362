package util

import "errors"

var (
	ErrUserExists         = errors.New("User already exists.")
	ErrUserNotFound       = errors.New("User not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrGoalNotFound       = errors.New("Goal not found")
	ErrInvalidGoalID      = errors.New("Invalid goal ID.")
	ErrProgressNotFound   = errors.New("Progress not found")
)
