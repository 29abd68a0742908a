package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/structech/survey-api/api/middleware"
	"github.com/structech/survey-api/api/types"
	authService "github.com/structech/survey-api/internal/services/auth"
)

// Login authenticates a user and issues a token pair
// @Summary      Log in
// @Description  Verify email and password, returning an access and refresh token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body types.LoginRequest true "Login credentials"
// @Success      200 {object} types.LoginResponse "Authenticated user and tokens"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      401 {object} types.ErrorResponse "Invalid credentials"
// @Failure      403 {object} types.ErrorResponse "Account disabled"
// @Router       /api/v1/auth/login [post]
func Login(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.LoginRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		user, pair, err := deps.AuthService.Login(c.Request.Context(), req.Email, req.Password, req.Remember)
		if err != nil {
			switch {
			case errors.Is(err, authService.ErrInvalidCredentials):
				types.SendUnauthorized(c, "Invalid email or password")
			case errors.Is(err, authService.ErrUserInactive):
				types.SendForbidden(c, "Account is disabled")
			default:
				types.SendInternalError(c, "Failed to log in")
			}
			return
		}

		types.SendSuccess(c, types.LoginResponse{
			User:         types.NewUserResponse(user),
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			ExpiresAt:    pair.ExpiresAt,
		})
	}
}

// Refresh exchanges a refresh token for a fresh pair
// @Summary      Refresh tokens
// @Description  Rotate a live refresh token into a new access and refresh token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token body types.RefreshRequest true "Refresh token"
// @Success      200 {object} auth.TokenPair "New token pair"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      401 {object} types.ErrorResponse "Expired, revoked or unknown token"
// @Router       /api/v1/auth/refresh [post]
func Refresh(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RefreshRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		pair, err := deps.AuthService.Refresh(c.Request.Context(), req.RefreshToken)
		if err != nil {
			switch {
			case errors.Is(err, authService.ErrTokenExpired):
				types.SendUnauthorized(c, "Refresh token expired")
			case errors.Is(err, authService.ErrTokenRevoked):
				types.SendUnauthorized(c, "Refresh token revoked")
			case errors.Is(err, authService.ErrInvalidToken):
				types.SendUnauthorized(c, "Invalid refresh token")
			case errors.Is(err, authService.ErrUserInactive):
				types.SendForbidden(c, "Account is disabled")
			default:
				types.SendInternalError(c, "Failed to refresh tokens")
			}
			return
		}

		types.SendSuccess(c, pair)
	}
}

// Logout revokes a refresh token
// @Summary      Log out
// @Description  Revoke the given refresh token so it can no longer be exchanged
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token body types.RefreshRequest true "Refresh token"
// @Success      200 {object} map[string]string "Logged out"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Router       /api/v1/auth/logout [post]
func Logout(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RefreshRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if err := deps.AuthService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
			types.SendInternalError(c, "Failed to log out")
			return
		}
		types.SendSuccess(c, gin.H{"message": "Logged out"})
	}
}

// Me returns the authenticated user
// @Summary      Get current user
// @Description  Return the user identified by the bearer token
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.UserResponse "Current user"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid token"
// @Router       /api/v1/auth/me [get]
func Me(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := middleware.Claims(c)
		if claims == nil {
			types.SendUnauthorized(c, "Unauthorized")
			return
		}

		user, err := deps.AuthService.CurrentUser(c.Request.Context(), claims)
		if err != nil {
			types.SendUnauthorized(c, "Unauthorized")
			return
		}
		types.SendSuccess(c, types.NewUserResponse(user))
	}
}
