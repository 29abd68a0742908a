package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/structech/survey-api/internal/models"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new refresh token repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateRefreshToken persists a refresh token
func (r *RepositoryImpl) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		return fmt.Errorf("creating refresh token: %w", err)
	}
	return nil
}

// GetRefreshToken looks up a refresh token by its opaque value
func (r *RepositoryImpl) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	var stored models.RefreshToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("getting refresh token: %w", err)
	}
	return &stored, nil
}

// RevokeRefreshToken marks a refresh token as revoked
func (r *RepositoryImpl) RevokeRefreshToken(ctx context.Context, token string) error {
	if err := r.db.WithContext(ctx).Model(&models.RefreshToken{}).
		Where("token = ?", token).
		Update("revoked", true).Error; err != nil {
		return fmt.Errorf("revoking refresh token: %w", err)
	}
	return nil
}

// DeleteExpiredTokens prunes tokens that expired before the given time
func (r *RepositoryImpl) DeleteExpiredTokens(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().
		Where("expires_at < ?", before).
		Delete(&models.RefreshToken{})
	if result.Error != nil {
		return 0, fmt.Errorf("pruning refresh tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}
