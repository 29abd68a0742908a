package cracks

import (
	"context"
	"io"

	"github.com/structech/survey-api/internal/models"
)

// ListFilter narrows a crack listing. ProjectID is required; the rest are
// optional.
type ListFilter struct {
	ProjectID  uint
	BlockID    *uint
	DefectType string
	// ExcludeMapped drops records that already have a design map, used when
	// picking a crack for a freshly drawn rectangle.
	ExcludeMapped bool
	Page          int
	PageSize      int
}

// Page is one page of crack records plus paging metadata
type Page struct {
	Items    []models.CrackRecord `json:"items"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
}

// Repository defines the interface for crack record data access
type Repository interface {
	ListCracks(ctx context.Context, filter ListFilter) ([]models.CrackRecord, int64, error)
	GetCrackByID(ctx context.Context, id uint) (*models.CrackRecord, error)

	// DeleteCracks removes records scoped to a project, optionally narrowed
	// to one block, returning the number removed.
	DeleteCracks(ctx context.Context, projectID uint, blockID *uint) (int64, error)

	// ReplaceProjectCracks atomically deletes every record for the project
	// and bulk-inserts the given batch. Either both steps commit or neither.
	ReplaceProjectCracks(ctx context.Context, projectID uint, records []models.CrackRecord) (deleted int64, created int64, err error)
}

// Service defines the interface for crack business logic
type Service interface {
	ListCracks(ctx context.Context, filter ListFilter) (*Page, error)
	DeleteCracks(ctx context.Context, projectID uint, blockID *uint) (int64, error)

	// Import parses a workbook and replaces the project's crack records with
	// the valid rows it contains.
	Import(ctx context.Context, projectID uint, workbook io.Reader) (*ImportOutcome, error)
}
