package blocks

import (
	"context"

	"github.com/structech/survey-api/internal/models"
)

// Repository defines the interface for block data access
type Repository interface {
	// Create operations
	CreateBlock(ctx context.Context, block *models.Block) error

	// Read operations
	GetBlockByID(ctx context.Context, id uint) (*models.Block, error)
	// FindBlockByName returns (nil, nil) when no block with the given
	// (project, name) pair exists.
	FindBlockByName(ctx context.Context, projectID uint, name string) (*models.Block, error)
	ListBlocksByProject(ctx context.Context, projectID uint) ([]models.Block, error)

	// Delete operations
	DeleteBlock(ctx context.Context, id uint) error
}

// Service defines the interface for block business logic
type Service interface {
	ListBlocks(ctx context.Context, projectID uint) ([]models.Block, error)
	CreateBlock(ctx context.Context, projectID uint, name string) (*models.Block, error)
	DeleteBlock(ctx context.Context, id uint) error

	// NewResolver returns a resolver scoped to a single import run for the
	// given project.
	NewResolver(projectID uint) *Resolver
}
