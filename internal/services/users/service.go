package users

import (
	"context"
	"strings"

	"github.com/structech/survey-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	minPasswordLen  = 8
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	bcryptCost int
}

// NewService creates a new user service. bcryptCost is clamped to the bcrypt
// package's supported range.
func NewService(repository Repository, bcryptCost int) Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &ServiceImpl{repository: repository, bcryptCost: bcryptCost}
}

func validRole(role string) bool {
	switch role {
	case models.RoleAdmin, models.RoleUser, models.RoleProjectUser:
		return true
	}
	return false
}

// ListUsers returns a page of users matching the filter
func (s *ServiceImpl) ListUsers(ctx context.Context, filter ListFilter) (*Page, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	items, total, err := s.repository.ListUsers(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &Page{Items: items, Total: total, Page: filter.Page, PageSize: filter.PageSize}, nil
}

// GetUserByID returns a single user
func (s *ServiceImpl) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.repository.GetUserByID(ctx, id)
}

// GetUserByEmail returns a single user by email
func (s *ServiceImpl) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// CreateUser registers a new user with a bcrypt-hashed password. An empty
// role defaults to the regular user role.
func (s *ServiceImpl) CreateUser(ctx context.Context, email, password, name, role string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if role == "" {
		role = models.RoleUser
	}
	if !validRole(role) {
		return nil, ErrInvalidRole
	}
	if len(password) < minPasswordLen {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       true,
	}
	if name = strings.TrimSpace(name); name != "" {
		user.Name = &name
	}

	if err := s.repository.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser applies a partial update to an existing user
func (s *ServiceImpl) UpdateUser(ctx context.Context, id uint, patch UpdatePatch) (*models.User, error) {
	if patch.Empty() {
		return nil, ErrNothingToUpdate
	}

	user, err := s.repository.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Role != nil {
		if !validRole(*patch.Role) {
			return nil, ErrInvalidRole
		}
		user.Role = *patch.Role
	}
	if patch.Status != nil {
		user.Status = *patch.Status
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			user.Name = nil
		} else {
			user.Name = &name
		}
	}
	if patch.Password != nil {
		if len(*patch.Password) < minPasswordLen {
			return nil, ErrWeakPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user
func (s *ServiceImpl) DeleteUser(ctx context.Context, id uint) error {
	return s.repository.DeleteUser(ctx, id)
}
