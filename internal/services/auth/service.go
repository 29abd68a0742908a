package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/structech/survey-api/internal/models"
	"github.com/structech/survey-api/internal/services/users"
	"golang.org/x/crypto/bcrypt"
)

// Options configures token issuance.
type Options struct {
	Secret      string
	AccessTTL   time.Duration
	RefreshTTL  time.Duration
	RememberTTL time.Duration
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	userStore  UserStore
	opts       Options
	now        func() time.Time
}

// NewService creates a new authentication service
func NewService(repository Repository, userStore UserStore, opts Options) Service {
	if opts.AccessTTL <= 0 {
		opts.AccessTTL = 15 * time.Minute
	}
	if opts.RefreshTTL <= 0 {
		opts.RefreshTTL = 24 * time.Hour
	}
	if opts.RememberTTL <= 0 {
		opts.RememberTTL = 30 * 24 * time.Hour
	}
	return &ServiceImpl{
		repository: repository,
		userStore:  userStore,
		opts:       opts,
		now:        time.Now,
	}
}

// Login verifies credentials, records the login time, and issues a token pair
func (s *ServiceImpl) Login(ctx context.Context, email, password string, remember bool) (*models.User, *TokenPair, error) {
	user, err := s.userStore.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	if !user.Status {
		return nil, nil, ErrUserInactive
	}

	now := s.now().UTC()
	user.LastLogin = &now
	if err := s.userStore.UpdateUser(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.issuePair(ctx, user, remember)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh rotates a live refresh token into a fresh pair
func (s *ServiceImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	stored, err := s.repository.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if stored.Revoked {
		return nil, ErrTokenRevoked
	}
	now := s.now()
	if now.After(stored.ExpiresAt) {
		return nil, ErrTokenExpired
	}

	user, err := s.userStore.GetUserByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if !user.Status {
		return nil, ErrUserInactive
	}

	if err := s.repository.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	// Keep the remaining lifetime of the original grant
	remember := stored.ExpiresAt.Sub(stored.CreatedAt) > s.opts.RefreshTTL
	return s.issuePair(ctx, user, remember)
}

// Logout revokes the refresh token. Tokens we no longer know about revoke as
// a no-op.
func (s *ServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return s.repository.RevokeRefreshToken(ctx, refreshToken)
}

// VerifyAccessToken parses and validates an access token signature and expiry
func (s *ServiceImpl) VerifyAccessToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(s.opts.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// CurrentUser loads the user behind verified claims
func (s *ServiceImpl) CurrentUser(ctx context.Context, claims *Claims) (*models.User, error) {
	user, err := s.userStore.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if !user.Status {
		return nil, ErrUserInactive
	}
	return user, nil
}

func (s *ServiceImpl) issuePair(ctx context.Context, user *models.User, remember bool) (*TokenPair, error) {
	now := s.now()
	expiresAt := now.Add(s.opts.AccessTTL)

	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.opts.Secret))
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}

	refreshTTL := s.opts.RefreshTTL
	if remember {
		refreshTTL = s.opts.RememberTTL
	}
	refresh, err := randomToken()
	if err != nil {
		return nil, err
	}
	if err := s.repository.CreateRefreshToken(ctx, &models.RefreshToken{
		Token:     refresh,
		UserID:    user.ID,
		ExpiresAt: now.Add(refreshTTL),
	}); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: expiresAt}, nil
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating refresh token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
