package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/structech/survey-api/internal/database"
	"github.com/structech/survey-api/internal/models"
	userssvc "github.com/structech/survey-api/internal/services/users"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*ServiceImpl, userssvc.Service) {
	t.Helper()

	db, err := database.Initialize(":memory:", database.Options{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.RefreshToken{}))

	userRepo := userssvc.NewRepository(db.DB)
	userService := userssvc.NewService(userRepo, bcrypt.MinCost)

	service := NewService(NewRepository(db.DB), userRepo, Options{
		Secret:      "test-secret",
		AccessTTL:   15 * time.Minute,
		RefreshTTL:  24 * time.Hour,
		RememberTTL: 30 * 24 * time.Hour,
	}).(*ServiceImpl)
	return service, userService
}

func createActiveUser(t *testing.T, userService userssvc.Service, email string) *models.User {
	t.Helper()
	user, err := userService.CreateUser(context.Background(), email, "correct-horse", "Test User", models.RoleUser)
	require.NoError(t, err)
	return user
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues tokens and records login time", func(t *testing.T) {
		service, userService := newTestService(t)
		created := createActiveUser(t, userService, "login@example.com")
		require.Nil(t, created.LastLogin)

		user, pair, err := service.Login(ctx, "login@example.com", "correct-horse", false)
		require.NoError(t, err)

		assert.Equal(t, created.ID, user.ID)
		assert.NotNil(t, user.LastLogin)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.True(t, pair.ExpiresAt.After(time.Now()))

		claims, err := service.VerifyAccessToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "login@example.com", claims.Email)
		assert.Equal(t, models.RoleUser, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		service, userService := newTestService(t)
		createActiveUser(t, userService, "login@example.com")

		_, _, err := service.Login(ctx, "login@example.com", "wrong", false)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		service, _ := newTestService(t)

		_, _, err := service.Login(ctx, "ghost@example.com", "correct-horse", false)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		service, userService := newTestService(t)
		user := createActiveUser(t, userService, "off@example.com")
		status := false
		_, err := userService.UpdateUser(ctx, user.ID, userssvc.UpdatePatch{Status: &status})
		require.NoError(t, err)

		_, _, err = service.Login(ctx, "off@example.com", "correct-horse", false)
		assert.ErrorIs(t, err, ErrUserInactive)
	})

	t.Run("remember extends the refresh lifetime", func(t *testing.T) {
		service, userService := newTestService(t)
		createActiveUser(t, userService, "remember@example.com")

		_, pair, err := service.Login(ctx, "remember@example.com", "correct-horse", true)
		require.NoError(t, err)

		stored, err := service.repository.GetRefreshToken(ctx, pair.RefreshToken)
		require.NoError(t, err)
		assert.True(t, stored.ExpiresAt.After(time.Now().Add(25*24*time.Hour)))
	})
}

func TestVerifyAccessToken(t *testing.T) {
	service, userService := newTestService(t)
	createActiveUser(t, userService, "verify@example.com")

	_, pair, err := service.Login(context.Background(), "verify@example.com", "correct-horse", false)
	require.NoError(t, err)

	t.Run("tampered token rejected", func(t *testing.T) {
		_, err := service.VerifyAccessToken(pair.AccessToken + "x")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := service.VerifyAccessToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		service.now = func() time.Time { return time.Now().Add(16 * time.Minute) }
		defer func() { service.now = time.Now }()

		_, err := service.VerifyAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the refresh token", func(t *testing.T) {
		service, userService := newTestService(t)
		createActiveUser(t, userService, "rotate@example.com")

		_, pair, err := service.Login(ctx, "rotate@example.com", "correct-horse", false)
		require.NoError(t, err)

		fresh, err := service.Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)
		assert.NotEqual(t, pair.RefreshToken, fresh.RefreshToken)

		// The old token is spent
		_, err = service.Refresh(ctx, pair.RefreshToken)
		assert.ErrorIs(t, err, ErrTokenRevoked)
	})

	t.Run("unknown token", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.Refresh(ctx, "deadbeef")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		service, userService := newTestService(t)
		createActiveUser(t, userService, "stale@example.com")

		_, pair, err := service.Login(ctx, "stale@example.com", "correct-horse", false)
		require.NoError(t, err)

		service.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
		defer func() { service.now = time.Now }()

		_, err = service.Refresh(ctx, pair.RefreshToken)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	service, userService := newTestService(t)
	createActiveUser(t, userService, "bye@example.com")

	_, pair, err := service.Login(ctx, "bye@example.com", "correct-horse", false)
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, pair.RefreshToken))

	_, err = service.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// Logging out twice is harmless
	assert.NoError(t, service.Logout(ctx, pair.RefreshToken))
}

func TestCurrentUser(t *testing.T) {
	ctx := context.Background()
	service, userService := newTestService(t)
	user := createActiveUser(t, userService, "me@example.com")

	_, pair, err := service.Login(ctx, "me@example.com", "correct-horse", false)
	require.NoError(t, err)
	claims, err := service.VerifyAccessToken(pair.AccessToken)
	require.NoError(t, err)

	current, err := service.CurrentUser(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)

	require.NoError(t, userService.DeleteUser(ctx, user.ID))
	_, err = service.CurrentUser(ctx, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
