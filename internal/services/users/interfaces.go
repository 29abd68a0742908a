package users

import (
	"context"

	"github.com/structech/survey-api/internal/models"
)

// ListFilter narrows and pages the user listing.
type ListFilter struct {
	Search    string
	Role      string
	Status    *bool
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// Page is one page of users plus paging metadata.
type Page struct {
	Items    []models.User `json:"items"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

// UpdatePatch carries the mutable user fields. Nil fields are left untouched.
type UpdatePatch struct {
	Name     *string
	Role     *string
	Status   *bool
	Password *string
}

// Empty reports whether the patch changes nothing.
func (p UpdatePatch) Empty() bool {
	return p.Name == nil && p.Role == nil && p.Status == nil && p.Password == nil
}

// Repository defines the data access layer for users
type Repository interface {
	ListUsers(ctx context.Context, filter ListFilter) ([]models.User, int64, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id uint) error
}

// Service defines the business logic layer for users
type Service interface {
	ListUsers(ctx context.Context, filter ListFilter) (*Page, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, email, password, name, role string) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, patch UpdatePatch) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) error
}
