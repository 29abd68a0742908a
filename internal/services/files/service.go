package files

import (
	"context"
	"io"
	"strings"

	"github.com/structech/survey-api/internal/models"
)

// allowedMimeTypes lists the exact non-image types accepted for upload.
// Anything with an image/ prefix is accepted as well.
var allowedMimeTypes = map[string]bool{
	"application/pdf": true,
	"text/plain":      true,
	"text/csv":        true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

// MimeAllowed reports whether the content type may be uploaded
func MimeAllowed(mimeType string) bool {
	if strings.HasPrefix(mimeType, "image/") {
		return true
	}
	return allowedMimeTypes[mimeType]
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	store      Store
}

// NewService creates a new project file service
func NewService(repository Repository, store Store) Service {
	return &ServiceImpl{repository: repository, store: store}
}

// ListFiles returns a project's file metadata
func (s *ServiceImpl) ListFiles(ctx context.Context, projectID uint) ([]models.ProjectFile, error) {
	return s.repository.ListFiles(ctx, projectID)
}

// Upload streams the payload to storage first, then records the metadata row.
// A failed insert leaves an orphaned payload rather than a dangling row.
func (s *ServiceImpl) Upload(ctx context.Context, upload Upload) (*models.ProjectFile, error) {
	if !MimeAllowed(upload.MimeType) {
		return nil, ErrUnsupportedType
	}

	storedPath, size, err := s.store.Save(upload.ProjectID, upload.OriginalName, upload.Body)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		s.store.Remove(storedPath)
		return nil, ErrEmptyUpload
	}

	title := strings.TrimSpace(upload.Title)
	if title == "" {
		title = upload.OriginalName
	}

	file := &models.ProjectFile{
		ProjectID:    upload.ProjectID,
		Title:        title,
		OriginalName: upload.OriginalName,
		Filename:     storedPath,
		MimeType:     upload.MimeType,
		Size:         size,
		UploadedByID: upload.UploadedByID,
	}
	if err := s.repository.CreateFile(ctx, file); err != nil {
		s.store.Remove(storedPath)
		return nil, err
	}
	return file, nil
}

// Download resolves the metadata row and opens the stored payload. ErrFileGone
// signals a row whose payload has vanished from disk.
func (s *ServiceImpl) Download(ctx context.Context, id uint) (*models.ProjectFile, io.ReadSeekCloser, error) {
	file, err := s.repository.GetFileByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	reader, err := s.store.Open(file.Filename)
	if err != nil {
		return nil, nil, err
	}
	return file, reader, nil
}

// DeleteFile removes the metadata row and best-effort removes the payload.
// A file id belonging to a different project reports ErrFileNotFound, so one
// project's path can never delete another project's file.
func (s *ServiceImpl) DeleteFile(ctx context.Context, projectID, id uint) error {
	file, err := s.repository.GetFileByID(ctx, id)
	if err != nil {
		return err
	}
	if file.ProjectID != projectID {
		return ErrFileNotFound
	}
	if err := s.repository.DeleteFile(ctx, id); err != nil {
		return err
	}
	// Disk removal failures are swallowed, the row is already gone
	s.store.Remove(file.Filename)
	return nil
}
