package blocks

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/structech/survey-api/api/types"
	blocksService "github.com/structech/survey-api/internal/services/blocks"
)

// List returns a project's blocks
// @Summary      List blocks
// @Description  List the structural blocks of a project, ordered by name
// @Tags         blocks
// @Security     BearerAuth
// @Produce      json
// @Param        projectId query int true "Project ID"
// @Success      200 {object} object{blocks=[]models.Block} "Blocks"
// @Failure      400 {object} types.ErrorResponse "Missing project ID"
// @Router       /api/v1/blocks [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := types.ParseUintQuery(c, "projectId")
		if !ok {
			return
		}

		list, err := deps.BlockService.ListBlocks(c.Request.Context(), projectID)
		if err != nil {
			types.SendInternalError(c, "Failed to list blocks")
			return
		}
		types.SendSuccess(c, gin.H{"blocks": list})
	}
}

// Create registers a block by hand, outside the import pipeline
// @Summary      Create block
// @Tags         blocks
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        block body types.CreateBlockRequest true "New block"
// @Success      201 {object} models.Block "Created block"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      409 {object} types.ErrorResponse "Block name already used in this project"
// @Router       /api/v1/blocks [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateBlockRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		block, err := deps.BlockService.CreateBlock(c.Request.Context(), req.ProjectID, req.Name)
		if err != nil {
			switch {
			case errors.Is(err, blocksService.ErrEmptyName):
				types.SendBadRequest(c, "Block name is required")
			case errors.Is(err, blocksService.ErrDuplicateBlock):
				types.SendConflict(c, "A block with this name already exists in the project")
			default:
				types.SendInternalError(c, "Failed to create block")
			}
			return
		}
		types.SendCreated(c, block)
	}
}

// Delete removes a block
// @Summary      Delete block
// @Tags         blocks
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Block ID"
// @Success      200 {object} map[string]string "Deleted"
// @Failure      404 {object} types.ErrorResponse "Block not found"
// @Router       /api/v1/blocks/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.BlockService.DeleteBlock(c.Request.Context(), id); err != nil {
			if errors.Is(err, blocksService.ErrBlockNotFound) {
				types.SendNotFound(c, "Block not found")
			} else {
				types.SendInternalError(c, "Failed to delete block")
			}
			return
		}
		types.SendSuccess(c, gin.H{"message": "Block deleted"})
	}
}
