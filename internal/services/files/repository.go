package files

import (
	"context"
	"errors"
	"fmt"

	"github.com/structech/survey-api/internal/models"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new project file repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// ListFiles returns a project's file metadata, newest first
func (r *RepositoryImpl) ListFiles(ctx context.Context, projectID uint) ([]models.ProjectFile, error) {
	var list []models.ProjectFile
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}
	return list, nil
}

// GetFileByID retrieves file metadata by ID
func (r *RepositoryImpl) GetFileByID(ctx context.Context, id uint) (*models.ProjectFile, error) {
	var file models.ProjectFile
	if err := r.db.WithContext(ctx).First(&file, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("getting file: %w", err)
	}
	return &file, nil
}

// CreateFile persists a file metadata row
func (r *RepositoryImpl) CreateFile(ctx context.Context, file *models.ProjectFile) error {
	if err := r.db.WithContext(ctx).Create(file).Error; err != nil {
		return fmt.Errorf("creating file record: %w", err)
	}
	return nil
}

// DeleteFile removes a file metadata row
func (r *RepositoryImpl) DeleteFile(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(&models.ProjectFile{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting file record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFileNotFound
	}
	return nil
}
