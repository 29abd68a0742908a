package blocks

import (
	"context"
	"strings"

	"github.com/structech/survey-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new block service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// ListBlocks retrieves all blocks for a project
func (s *ServiceImpl) ListBlocks(ctx context.Context, projectID uint) ([]models.Block, error) {
	return s.repository.ListBlocksByProject(ctx, projectID)
}

// CreateBlock creates a block with an explicit name
func (s *ServiceImpl) CreateBlock(ctx context.Context, projectID uint, name string) (*models.Block, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	block := &models.Block{ProjectID: projectID, Name: name}
	if err := s.repository.CreateBlock(ctx, block); err != nil {
		return nil, err
	}
	return block, nil
}

// DeleteBlock deletes a block by its ID
func (s *ServiceImpl) DeleteBlock(ctx context.Context, id uint) error {
	return s.repository.DeleteBlock(ctx, id)
}

// NewResolver returns a resolver scoped to one import run
func (s *ServiceImpl) NewResolver(projectID uint) *Resolver {
	return &Resolver{
		repository: s.repository,
		projectID:  projectID,
		cache:      make(map[string]uint),
	}
}

// Resolver maps block names to persistent block IDs, creating blocks on
// demand. The cache lives for one import run only, so repeated names within
// a workbook cost a single lookup; cross-project uniqueness is left to the
// (project_id, name) constraint.
type Resolver struct {
	repository Repository
	projectID  uint
	cache      map[string]uint
}

// Resolve returns the block ID for a name, creating the block if needed
func (r *Resolver) Resolve(ctx context.Context, name string) (uint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrEmptyName
	}

	if id, ok := r.cache[name]; ok {
		return id, nil
	}

	existing, err := r.repository.FindBlockByName(ctx, r.projectID, name)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		r.cache[name] = existing.ID
		return existing.ID, nil
	}

	block := &models.Block{ProjectID: r.projectID, Name: name}
	if err := r.repository.CreateBlock(ctx, block); err != nil {
		// A concurrent import for the same project may have inserted the
		// name first; fall back to the lookup.
		if err == ErrDuplicateBlock {
			if existing, ferr := r.repository.FindBlockByName(ctx, r.projectID, name); ferr == nil && existing != nil {
				r.cache[name] = existing.ID
				return existing.ID, nil
			}
		}
		return 0, err
	}
	r.cache[name] = block.ID
	return block.ID, nil
}
