package cracks

import "errors"

var (
	ErrCrackNotFound = errors.New("crack record not found")

	// Workbook-level import failures, all mapped to 400 by the handler
	ErrWorkbookUnreadable = errors.New("unreadable workbook")
	ErrNoSheet            = errors.New("no sheet")
	ErrEmptySheet         = errors.New("empty sheet")
	ErrUnexpectedHeader   = errors.New("unexpected header format")
	ErrNoValidRows        = errors.New("no valid data rows")
)
