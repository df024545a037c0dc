package utils

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTaskTextRequired   = errors.New("task content required")
	ErrNoTasksToday       = errors.New("no tasks for today")
	ErrTaskNotFound       = errors.New("task not found")
)
