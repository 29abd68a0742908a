package designmaps

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

// NewRepository creates a new design map repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateDesignMap creates a new design map in the database
func (r *RepositoryImpl) CreateDesignMap(ctx context.Context, designMap *models.DesignMap) error {
	if err := r.db.WithContext(ctx).Create(designMap).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateMap
		}
		return fmt.Errorf("creating design map: %w", err)
	}
	return nil
}

// GetDesignMapByID retrieves a design map by its ID
func (r *RepositoryImpl) GetDesignMapByID(ctx context.Context, id uint) (*models.DesignMap, error) {
	var designMap models.DesignMap
	if err := r.db.WithContext(ctx).First(&designMap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMapNotFound
		}
		return nil, fmt.Errorf("getting design map: %w", err)
	}
	return &designMap, nil
}

// ListDesignMaps retrieves maps for a project, optionally for one crack
func (r *RepositoryImpl) ListDesignMaps(ctx context.Context, projectID uint, crackRecordID *uint) ([]models.DesignMap, error) {
	query := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if crackRecordID != nil {
		query = query.Where("crack_record_id = ?", *crackRecordID)
	}
	var maps []models.DesignMap
	if err := query.Order("id ASC").Find(&maps).Error; err != nil {
		return nil, fmt.Errorf("listing design maps: %w", err)
	}
	return maps, nil
}

// UpdateDesignMap updates an existing design map
func (r *RepositoryImpl) UpdateDesignMap(ctx context.Context, designMap *models.DesignMap) error {
	result := r.db.WithContext(ctx).Save(designMap)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateMap
		}
		return fmt.Errorf("updating design map: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMapNotFound
	}
	return nil
}

// DeleteDesignMap deletes a design map by its ID
func (r *RepositoryImpl) DeleteDesignMap(ctx context.Context, id uint) error {
	// Hard delete so the crack can be mapped again afterwards
	result := r.db.WithContext(ctx).Unscoped().Delete(&models.DesignMap{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting design map: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMapNotFound
	}
	return nil
}
