package projects

import (
	"context"
	"errors"
	"strings"

	"github.com/structech/survey-api/internal/models"
	"github.com/structech/survey-api/internal/services/users"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// UserStore is the slice of the user layer membership management needs.
// users.Repository satisfies it.
type UserStore interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	userStore  UserStore
}

// NewService creates a new project service
func NewService(repository Repository, userStore UserStore) Service {
	return &ServiceImpl{repository: repository, userStore: userStore}
}

// ListProjects returns a page of projects matching the filter
func (s *ServiceImpl) ListProjects(ctx context.Context, filter ListFilter) (*Page, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	items, total, err := s.repository.ListProjects(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &Page{Items: items, Total: total, Page: filter.Page, PageSize: filter.PageSize}, nil
}

// GetProjectByID returns a single project
func (s *ServiceImpl) GetProjectByID(ctx context.Context, id uint) (*models.Project, error) {
	return s.repository.GetProjectByID(ctx, id)
}

// CreateProject registers a new project
func (s *ServiceImpl) CreateProject(ctx context.Context, name, clientName string, location, description, designImage *string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	project := &models.Project{
		Name:        name,
		ClientName:  strings.TrimSpace(clientName),
		Location:    location,
		Description: description,
		DesignImage: designImage,
	}
	if err := s.repository.CreateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// UpdateProject applies a partial update to an existing project
func (s *ServiceImpl) UpdateProject(ctx context.Context, id uint, patch UpdatePatch) (*models.Project, error) {
	if patch.Empty() {
		return nil, ErrNothingToUpdate
	}

	project, err := s.repository.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		project.Name = name
	}
	if patch.ClientName != nil {
		project.ClientName = strings.TrimSpace(*patch.ClientName)
	}
	if patch.Location != nil {
		project.Location = patch.Location
	}
	if patch.Description != nil {
		project.Description = patch.Description
	}
	if patch.DesignImage != nil {
		project.DesignImage = patch.DesignImage
	}

	if err := s.repository.UpdateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes a project and everything hanging off it
func (s *ServiceImpl) DeleteProject(ctx context.Context, id uint) error {
	return s.repository.DeleteProject(ctx, id)
}

// ListMembers returns the users attached to a project
func (s *ServiceImpl) ListMembers(ctx context.Context, projectID uint) ([]models.User, error) {
	if _, err := s.repository.GetProjectByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.repository.ListMembers(ctx, projectID)
}

// AddMember attaches a user to a project after checking both exist
func (s *ServiceImpl) AddMember(ctx context.Context, projectID, userID uint) error {
	if _, err := s.repository.GetProjectByID(ctx, projectID); err != nil {
		return err
	}
	if _, err := s.userStore.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.repository.AddMember(ctx, projectID, userID)
}

// RemoveMember detaches a user from a project
func (s *ServiceImpl) RemoveMember(ctx context.Context, projectID, userID uint) error {
	if _, err := s.repository.GetProjectByID(ctx, projectID); err != nil {
		return err
	}
	return s.repository.RemoveMember(ctx, projectID, userID)
}

// IsMember reports whether the user belongs to the project
func (s *ServiceImpl) IsMember(ctx context.Context, projectID, userID uint) (bool, error) {
	return s.repository.IsMember(ctx, projectID, userID)
}
