package designmaps

import (
	"context"
	"errors"
	"math"

	"github.com/structech/survey-api/internal/models"
	"github.com/structech/survey-api/internal/services/cracks"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	crackStore CrackStore
}

// NewService creates a new design map service
func NewService(repository Repository, crackStore CrackStore) Service {
	return &ServiceImpl{
		repository: repository,
		crackStore: crackStore,
	}
}

// ListDesignMaps retrieves maps for a project, optionally for one crack
func (s *ServiceImpl) ListDesignMaps(ctx context.Context, projectID uint, crackRecordID *uint) ([]models.DesignMap, error) {
	return s.repository.ListDesignMaps(ctx, projectID, crackRecordID)
}

// GetDesignMapByID retrieves a design map by its ID
func (s *ServiceImpl) GetDesignMapByID(ctx context.Context, id uint) (*models.DesignMap, error) {
	return s.repository.GetDesignMapByID(ctx, id)
}

// CreateDesignMap links a rectangle to an unmapped crack of the project
func (s *ServiceImpl) CreateDesignMap(ctx context.Context, projectID, crackRecordID uint, x, y, width, height float64) (*models.DesignMap, error) {
	for _, v := range []float64{x, y, width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrInvalidGeometry
		}
	}

	if err := s.checkCrackInProject(ctx, crackRecordID, projectID); err != nil {
		return nil, err
	}

	designMap := &models.DesignMap{
		ProjectID:     projectID,
		CrackRecordID: crackRecordID,
		X:             x,
		Y:             y,
		Width:         width,
		Height:        height,
	}
	if err := s.repository.CreateDesignMap(ctx, designMap); err != nil {
		return nil, err
	}
	return designMap, nil
}

// UpdateDesignMap repositions and/or re-associates an existing map
func (s *ServiceImpl) UpdateDesignMap(ctx context.Context, id uint, patch UpdatePatch) (*models.DesignMap, error) {
	if patch.Empty() {
		return nil, ErrNothingToUpdate
	}

	designMap, err := s.repository.GetDesignMapByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.CrackRecordID != nil {
		if err := s.checkCrackInProject(ctx, *patch.CrackRecordID, designMap.ProjectID); err != nil {
			return nil, err
		}
		designMap.CrackRecordID = *patch.CrackRecordID
	}
	if patch.X != nil {
		designMap.X = *patch.X
	}
	if patch.Y != nil {
		designMap.Y = *patch.Y
	}
	if patch.Width != nil {
		designMap.Width = *patch.Width
	}
	if patch.Height != nil {
		designMap.Height = *patch.Height
	}

	if err := s.repository.UpdateDesignMap(ctx, designMap); err != nil {
		return nil, err
	}
	return designMap, nil
}

// DeleteDesignMap deletes a design map by its ID
func (s *ServiceImpl) DeleteDesignMap(ctx context.Context, id uint) error {
	return s.repository.DeleteDesignMap(ctx, id)
}

// checkCrackInProject verifies the crack exists and belongs to the project
func (s *ServiceImpl) checkCrackInProject(ctx context.Context, crackRecordID, projectID uint) error {
	crack, err := s.crackStore.GetCrackByID(ctx, crackRecordID)
	if err != nil {
		if errors.Is(err, cracks.ErrCrackNotFound) {
			return ErrCrackNotInProject
		}
		return err
	}
	if crack.ProjectID != projectID {
		return ErrCrackNotInProject
	}
	return nil
}
