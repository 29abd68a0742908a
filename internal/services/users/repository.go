package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/structech/survey-api/internal/models"
	"gorm.io/gorm"
)

// sortColumns is the allow-list for ListFilter.SortBy. Anything else falls
// back to created_at.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"email":     "email",
	"name":      "name",
	"role":      "role",
	"lastLogin": "last_login",
}

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new user repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// ListUsers retrieves a filtered, paginated set of users plus the total
// matching count.
func (r *RepositoryImpl) ListUsers(ctx context.Context, filter ListFilter) ([]models.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.User{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("email LIKE ? OR name LIKE ?", pattern, pattern)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting users: %w", err)
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if filter.SortOrder == "desc" {
		direction = "DESC"
	}

	offset := (filter.Page - 1) * filter.PageSize
	var list []models.User
	if err := query.
		Order(column + " " + direction).
		Offset(offset).
		Limit(filter.PageSize).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("listing users: %w", err)
	}

	return list, total, nil
}

// GetUserByID retrieves a user by their ID
func (r *RepositoryImpl) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email, or ErrUserNotFound
func (r *RepositoryImpl) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return &user, nil
}

// CreateUser persists a new user, mapping unique violations to
// ErrDuplicateEmail
func (r *RepositoryImpl) CreateUser(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// UpdateUser persists changes to an existing user
func (r *RepositoryImpl) UpdateUser(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("updating user: %w", err)
	}
	return nil
}

// DeleteUser removes a user by ID
func (r *RepositoryImpl) DeleteUser(ctx context.Context, id uint) error {
	// Hard delete so the email can be registered again afterwards
	result := r.db.WithContext(ctx).Unscoped().Delete(&models.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
