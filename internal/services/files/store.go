package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	apperrors "github.com/structech/survey-api/pkg/errors"
)

// LocalStore writes payloads under a root directory, laid out as
// projects/<projectID>/files/<uuid><ext>.
type LocalStore struct {
	root string
}

// NewLocalStore creates a disk-backed store rooted at dir
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{root: dir}
}

// Save streams r to a freshly named file and returns its path relative to the
// store root. The extension of the original name is kept so downloads get a
// sensible filename.
func (s *LocalStore) Save(projectID uint, originalName string, r io.Reader) (string, int64, error) {
	relDir := filepath.Join("projects", fmt.Sprintf("%d", projectID), "files")
	if err := os.MkdirAll(filepath.Join(s.root, relDir), 0o755); err != nil {
		return "", 0, apperrors.StorageError("mkdir", err)
	}

	relPath := filepath.Join(relDir, uuid.NewString()+filepath.Ext(originalName))
	dst, err := os.Create(filepath.Join(s.root, relPath))
	if err != nil {
		return "", 0, apperrors.StorageError("create", err)
	}

	written, err := io.Copy(dst, r)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(filepath.Join(s.root, relPath))
		return "", 0, apperrors.StorageError("write", err)
	}

	return relPath, written, nil
}

// Open returns a reader for a stored path, or ErrFileGone when the payload
// has disappeared from disk.
func (s *LocalStore) Open(storedPath string) (io.ReadSeekCloser, error) {
	f, err := os.Open(filepath.Join(s.root, storedPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileGone
		}
		return nil, apperrors.StorageError("open", err)
	}
	return f, nil
}

// Remove deletes a stored payload, ignoring already-missing files
func (s *LocalStore) Remove(storedPath string) error {
	if err := os.Remove(filepath.Join(s.root, storedPath)); err != nil && !os.IsNotExist(err) {
		return apperrors.StorageError("remove", err)
	}
	return nil
}
