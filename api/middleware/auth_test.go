package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/structech/survey-api/api/types"
	"github.com/structech/survey-api/internal/models"
	"github.com/structech/survey-api/internal/services/auth"
	"github.com/structech/survey-api/internal/services/users"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) (*gin.Engine, map[string]string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.RefreshToken{}))

	userService := users.NewService(users.NewRepository(db), 4)
	authService := auth.NewService(auth.NewRepository(db), users.NewRepository(db), auth.Options{
		Secret: "test-secret",
	})
	deps := &types.Dependencies{AuthService: authService}

	ctx := context.Background()
	tokens := map[string]string{}
	for role, email := range map[string]string{
		models.RoleAdmin: "admin@example.com",
		models.RoleUser:  "user@example.com",
	} {
		_, err := userService.CreateUser(ctx, email, "password1", "Someone", role)
		require.NoError(t, err)
		_, pair, err := authService.Login(ctx, email, "password1", false)
		require.NoError(t, err)
		tokens[role] = pair.AccessToken
	}

	router := gin.New()
	protected := router.Group("/protected")
	protected.Use(RequireAuth(deps))
	protected.GET("", func(c *gin.Context) {
		claims := Claims(c)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})

	adminOnly := router.Group("/admin")
	adminOnly.Use(RequireAuth(deps), RequireAdmin())
	adminOnly.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router, tokens
}

func doRequest(router *gin.Engine, target, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	router, tokens := setupRouter(t)

	t.Run("accepts a valid bearer token", func(t *testing.T) {
		w := doRequest(router, "/protected", "Bearer "+tokens[models.RoleUser])
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user@example.com")
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		w := doRequest(router, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authorization header required")
	})

	t.Run("rejects a non-bearer scheme", func(t *testing.T) {
		w := doRequest(router, "/protected", "Basic abc123")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		w := doRequest(router, "/protected", "Bearer not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})
}

func TestRequireAdmin(t *testing.T) {
	router, tokens := setupRouter(t)

	t.Run("admin passes", func(t *testing.T) {
		w := doRequest(router, "/admin", "Bearer "+tokens[models.RoleAdmin])
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		w := doRequest(router, "/admin", "Bearer "+tokens[models.RoleUser])
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Admin access required")
	})
}
