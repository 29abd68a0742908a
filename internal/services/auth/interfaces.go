package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/structech/survey-api/internal/models"
)

// Claims are the payload of an access token.
type Claims struct {
	UserID uint   `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenPair is what a successful login or refresh returns.
type TokenPair struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// UserStore is the slice of the user layer authentication needs.
// users.Repository satisfies it.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

// Repository defines the data access layer for refresh tokens
type Repository interface {
	CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error
	GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, token string) error
	DeleteExpiredTokens(ctx context.Context, before time.Time) (int64, error)
}

// Service defines the business logic layer for authentication
type Service interface {
	// Login verifies credentials and issues a token pair. remember extends
	// the refresh token's lifetime.
	Login(ctx context.Context, email, password string, remember bool) (*models.User, *TokenPair, error)
	// Refresh exchanges a live refresh token for a fresh pair, rotating the
	// stored token.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Logout revokes the refresh token. Unknown tokens are not an error.
	Logout(ctx context.Context, refreshToken string) error
	// VerifyAccessToken parses and validates an access token.
	VerifyAccessToken(tokenString string) (*Claims, error)
	// CurrentUser loads the user identified by verified claims.
	CurrentUser(ctx context.Context, claims *Claims) (*models.User, error)
}
