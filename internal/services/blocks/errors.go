package blocks

import "errors"

var (
	ErrBlockNotFound  = errors.New("block not found")
	ErrDuplicateBlock = errors.New("block name already exists in project")
	ErrEmptyName      = errors.New("block name required")
)
