package projects

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrMemberNotFound  = errors.New("user is not a member of this project")
	ErrDuplicateMember = errors.New("user is already a member of this project")
	ErrEmptyName       = errors.New("project name is required")
	ErrNothingToUpdate = errors.New("nothing to update")
)
