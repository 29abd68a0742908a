package cracks

import (
	"context"
	"io"

	"github.com/structech/survey-api/internal/services/blocks"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	importer   *Importer
}

// NewService creates a new crack service
func NewService(repository Repository, blockService blocks.Service) Service {
	return &ServiceImpl{
		repository: repository,
		importer:   NewImporter(repository, blockService),
	}
}

// ListCracks retrieves one page of crack records
func (s *ServiceImpl) ListCracks(ctx context.Context, filter ListFilter) (*Page, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	items, total, err := s.repository.ListCracks(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &Page{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// DeleteCracks removes crack records for a project, optionally for one block
func (s *ServiceImpl) DeleteCracks(ctx context.Context, projectID uint, blockID *uint) (int64, error) {
	return s.repository.DeleteCracks(ctx, projectID, blockID)
}

// Import replaces the project's crack records from a workbook
func (s *ServiceImpl) Import(ctx context.Context, projectID uint, workbook io.Reader) (*ImportOutcome, error) {
	return s.importer.Import(ctx, projectID, workbook)
}
