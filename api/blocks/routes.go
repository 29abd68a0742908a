package blocks

import (
	"github.com/gin-gonic/gin"
	"github.com/structech/survey-api/api/middleware"
	"github.com/structech/survey-api/api/types"
)

// RegisterRoutes registers block routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.Use(middleware.RequireAuth(deps))

	router.GET("", List(deps))
	router.POST("", Create(deps))
	router.DELETE("/:id", Delete(deps))
}
