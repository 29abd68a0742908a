package projects

import (
	"github.com/gin-gonic/gin"
	"github.com/structech/survey-api/api/middleware"
	"github.com/structech/survey-api/api/types"
)

// RegisterRoutes registers project routes, including the membership and file
// subresources. Mutating project structure is admin-only; files are open to
// members.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.Use(middleware.RequireAuth(deps))

	router.GET("", List(deps))
	router.GET("/:id", Get(deps))

	router.GET("/:id/files", ListFiles(deps))
	router.POST("/:id/files", UploadFile(deps))
	router.GET("/:id/files/:fileId", DownloadFile(deps))
	router.DELETE("/:id/files/:fileId", DeleteFile(deps))

	admin := router.Group("")
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("", Create(deps))
		admin.PATCH("/:id", Update(deps))
		admin.DELETE("/:id", Delete(deps))
		admin.GET("/:id/members", ListMembers(deps))
		admin.POST("/:id/members", AddMember(deps))
		admin.DELETE("/:id/members/:userId", RemoveMember(deps))
	}
}
