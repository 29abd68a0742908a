package cracks

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

// NewRepository creates a new crack record repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// ListCracks retrieves a filtered, paginated set of crack records with their
// blocks preloaded, plus the total matching count.
func (r *RepositoryImpl) ListCracks(ctx context.Context, filter ListFilter) ([]models.CrackRecord, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.CrackRecord{}).
		Where("project_id = ?", filter.ProjectID)

	if filter.BlockID != nil {
		query = query.Where("block_id = ?", *filter.BlockID)
	}
	if filter.DefectType != "" {
		query = query.Where("defect_type = ?", filter.DefectType)
	}
	if filter.ExcludeMapped {
		query = query.Where("NOT EXISTS (SELECT 1 FROM design_maps WHERE design_maps.crack_record_id = crack_records.id)")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting cracks: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	var records []models.CrackRecord
	if err := query.
		Preload("Block").
		Order("id ASC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("listing cracks: %w", err)
	}

	return records, total, nil
}

// GetCrackByID retrieves a crack record by its ID
func (r *RepositoryImpl) GetCrackByID(ctx context.Context, id uint) (*models.CrackRecord, error) {
	var record models.CrackRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCrackNotFound
		}
		return nil, fmt.Errorf("getting crack: %w", err)
	}
	return &record, nil
}

// DeleteCracks removes crack records for a project, optionally for one block.
// Design maps referencing the records go first so the crack delete never trips
// the foreign key on their crack_record_id.
func (r *RepositoryImpl) DeleteCracks(ctx context.Context, projectID uint, blockID *uint) (int64, error) {
	var deleted int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mapScope := "crack_record_id IN (SELECT id FROM crack_records WHERE project_id = ?"
		args := []any{projectID}
		if blockID != nil {
			mapScope += " AND block_id = ?"
			args = append(args, *blockID)
		}
		mapScope += ")"
		if err := tx.Unscoped().Where(mapScope, args...).Delete(&models.DesignMap{}).Error; err != nil {
			return fmt.Errorf("deleting design maps: %w", err)
		}

		// Hard delete: replaced survey rows are gone for good, and soft-deleted
		// leftovers would trip the design-map uniqueness on re-import
		query := tx.Unscoped().Where("project_id = ?", projectID)
		if blockID != nil {
			query = query.Where("block_id = ?", *blockID)
		}
		result := query.Delete(&models.CrackRecord{})
		if result.Error != nil {
			return fmt.Errorf("deleting cracks: %w", result.Error)
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// ReplaceProjectCracks swaps the project's crack records for the given batch
// inside a single transaction, so a failed insert can never leave the project
// empty. Design maps attached to the replaced records are removed with them;
// row identities do not survive a re-import.
func (r *RepositoryImpl) ReplaceProjectCracks(ctx context.Context, projectID uint, records []models.CrackRecord) (int64, int64, error) {
	var deleted, created int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("crack_record_id IN (SELECT id FROM crack_records WHERE project_id = ?)", projectID).
			Delete(&models.DesignMap{}).Error; err != nil {
			return fmt.Errorf("deleting design maps: %w", err)
		}

		result := tx.Unscoped().Where("project_id = ?", projectID).Delete(&models.CrackRecord{})
		if result.Error != nil {
			return fmt.Errorf("deleting existing cracks: %w", result.Error)
		}
		deleted = result.RowsAffected

		if len(records) > 0 {
			if err := tx.CreateInBatches(records, 200).Error; err != nil {
				return fmt.Errorf("inserting cracks: %w", err)
			}
			created = int64(len(records))
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return deleted, created, nil
}
