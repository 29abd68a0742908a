package blocks

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

// NewRepository creates a new block repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateBlock creates a new block in the database
func (r *RepositoryImpl) CreateBlock(ctx context.Context, block *models.Block) error {
	if err := r.db.WithContext(ctx).Create(block).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateBlock
		}
		return fmt.Errorf("creating block: %w", err)
	}
	return nil
}

// GetBlockByID retrieves a block by its ID
func (r *RepositoryImpl) GetBlockByID(ctx context.Context, id uint) (*models.Block, error) {
	var block models.Block
	if err := r.db.WithContext(ctx).First(&block, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlockNotFound
		}
		return nil, fmt.Errorf("getting block: %w", err)
	}
	return &block, nil
}

// FindBlockByName retrieves a block by (project, name), nil when absent
func (r *RepositoryImpl) FindBlockByName(ctx context.Context, projectID uint, name string) (*models.Block, error) {
	var block models.Block
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND name = ?", projectID, name).
		First(&block).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding block: %w", err)
	}
	return &block, nil
}

// ListBlocksByProject retrieves all blocks for a project ordered by name
func (r *RepositoryImpl) ListBlocksByProject(ctx context.Context, projectID uint) ([]models.Block, error) {
	var blocks []models.Block
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("name ASC").
		Find(&blocks).Error; err != nil {
		return nil, fmt.Errorf("listing blocks: %w", err)
	}
	return blocks, nil
}

// DeleteBlock deletes a block by its ID
func (r *RepositoryImpl) DeleteBlock(ctx context.Context, id uint) error {
	// Hard delete so the (project, name) pair can be reused
	result := r.db.WithContext(ctx).Unscoped().Delete(&models.Block{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting block: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBlockNotFound
	}
	return nil
}
