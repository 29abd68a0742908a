package cracks

import (
	"github.com/gin-gonic/gin"
	"github.com/structech/survey-api/api/middleware"
	"github.com/structech/survey-api/api/types"
)

// RegisterRoutes registers crack record routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.Use(middleware.RequireAuth(deps))

	router.GET("", List(deps))
	router.POST("", Import(deps))
	router.DELETE("", Delete(deps))
}
