package users

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("a user with this email already exists")
	ErrInvalidRole     = errors.New("invalid role")
	ErrNothingToUpdate = errors.New("nothing to update")
	ErrWeakPassword    = errors.New("password must be at least 8 characters")
)
