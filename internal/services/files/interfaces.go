package files

import (
	"context"
	"io"

	"github.com/structech/survey-api/internal/models"
)

// Store persists file payloads outside the database.
type Store interface {
	// Save streams r to durable storage and returns the stored relative
	// path together with the number of bytes written.
	Save(projectID uint, originalName string, r io.Reader) (string, int64, error)
	// Open returns a reader for a previously stored path.
	Open(storedPath string) (io.ReadSeekCloser, error)
	// Remove deletes a stored payload. Missing files are not an error.
	Remove(storedPath string) error
}

// Repository defines the data access layer for project file metadata
type Repository interface {
	ListFiles(ctx context.Context, projectID uint) ([]models.ProjectFile, error)
	GetFileByID(ctx context.Context, id uint) (*models.ProjectFile, error)
	CreateFile(ctx context.Context, file *models.ProjectFile) error
	DeleteFile(ctx context.Context, id uint) error
}

// Service defines the business logic layer for project files
type Service interface {
	ListFiles(ctx context.Context, projectID uint) ([]models.ProjectFile, error)
	Upload(ctx context.Context, upload Upload) (*models.ProjectFile, error)
	// Download resolves the metadata row and opens the payload on disk.
	Download(ctx context.Context, id uint) (*models.ProjectFile, io.ReadSeekCloser, error)
	// DeleteFile removes a file, refusing ids that belong to another project.
	DeleteFile(ctx context.Context, projectID, id uint) error
}

// Upload carries one incoming file.
type Upload struct {
	ProjectID    uint
	UploadedByID uint
	Title        string
	OriginalName string
	MimeType     string
	Body         io.Reader
}
