package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/structech/survey-api/api/middleware"
	"github.com/structech/survey-api/api/types"
)

// RegisterRoutes registers authentication routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/login", Login(deps))
	router.POST("/refresh", Refresh(deps))
	router.POST("/logout", Logout(deps))
	router.GET("/me", middleware.RequireAuth(deps), Me(deps))
}
