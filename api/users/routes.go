package users

import (
	"github.com/gin-gonic/gin"
	"github.com/structech/survey-api/api/middleware"
	"github.com/structech/survey-api/api/types"
)

// RegisterRoutes registers user management routes. The whole group is
// admin-only.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.Use(middleware.RequireAuth(deps), middleware.RequireAdmin())

	router.GET("", List(deps))
	router.POST("", Create(deps))
	router.GET("/:id", Get(deps))
	router.PATCH("/:id", Update(deps))
	router.DELETE("/:id", Delete(deps))
}
