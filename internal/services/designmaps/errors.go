package designmaps

import "errors"

var (
	ErrMapNotFound       = errors.New("design map not found")
	ErrDuplicateMap      = errors.New("design map already exists for crack")
	ErrCrackNotInProject = errors.New("crack not found in project")
	ErrNothingToUpdate   = errors.New("nothing to update")
	ErrInvalidGeometry   = errors.New("x,y,width,height required")
)
