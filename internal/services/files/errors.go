package files

import "errors"

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrFileGone        = errors.New("file metadata exists but the payload is missing from storage")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrEmptyUpload     = errors.New("uploaded file is empty")
)
