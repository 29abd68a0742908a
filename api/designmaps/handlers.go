package designmaps

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/structech/survey-api/api/types"
	designmapsService "github.com/structech/survey-api/internal/services/designmaps"
)

// List returns a project's design maps
// @Summary      List design maps
// @Description  List the rectangles drawn over a project's design image, optionally narrowed to one crack record
// @Tags         design-maps
// @Security     BearerAuth
// @Produce      json
// @Param        projectId query int true "Project ID"
// @Param        crackRecordId query int false "Filter by crack record"
// @Success      200 {object} object{items=[]models.DesignMap} "Design maps"
// @Failure      400 {object} types.ErrorResponse "Missing project ID"
// @Router       /api/v1/design-maps [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := strconv.ParseUint(c.Query("projectId"), 10, 32)
		if err != nil || projectID == 0 {
			types.SendBadRequest(c, "projectId required")
			return
		}
		crackRecordID, ok := types.OptionalUintQuery(c, "crackRecordId")
		if !ok {
			return
		}

		items, listErr := deps.DesignMapService.ListDesignMaps(c.Request.Context(), uint(projectID), crackRecordID)
		if listErr != nil {
			types.SendInternalError(c, "Failed to fetch design maps")
			return
		}
		types.SendSuccess(c, gin.H{"items": items})
	}
}

// Get returns a single design map
// @Summary      Get design map
// @Tags         design-maps
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Design map ID"
// @Success      200 {object} models.DesignMap "Design map"
// @Failure      404 {object} types.ErrorResponse "Design map not found"
// @Router       /api/v1/design-maps/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		designMap, err := deps.DesignMapService.GetDesignMapByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, designmapsService.ErrMapNotFound) {
				types.SendNotFound(c, "Not found")
			} else {
				types.SendInternalError(c, "Failed to fetch design map")
			}
			return
		}
		types.SendSuccess(c, designMap)
	}
}

// Create links a drawn rectangle to a crack record
// @Summary      Create design map
// @Description  Link a rectangle on the design image to a crack record. The crack must belong to the given project and must not be mapped yet.
// @Tags         design-maps
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        map body types.CreateDesignMapRequest true "New design map"
// @Success      201 {object} models.DesignMap "Created design map"
// @Failure      400 {object} types.ErrorResponse "Invalid request or coordinates"
// @Failure      404 {object} types.ErrorResponse "Crack not found in project"
// @Failure      409 {object} types.ErrorResponse "Crack already mapped"
// @Router       /api/v1/design-maps [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateDesignMapRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		created, err := deps.DesignMapService.CreateDesignMap(c.Request.Context(),
			req.ProjectID, req.CrackRecordID, *req.X, *req.Y, *req.Width, *req.Height)
		if err != nil {
			switch {
			case errors.Is(err, designmapsService.ErrCrackNotInProject):
				types.SendNotFound(c, "Crack not found in project")
			case errors.Is(err, designmapsService.ErrDuplicateMap):
				types.SendConflict(c, "Design map already exists for crack")
			case errors.Is(err, designmapsService.ErrInvalidGeometry):
				types.SendBadRequest(c, "x,y,width,height required")
			default:
				types.SendInternalError(c, "Failed to create design map")
			}
			return
		}
		types.SendCreated(c, created)
	}
}

// Update repositions or re-associates a design map
// @Summary      Update design map
// @Description  Change the rectangle's geometry and/or re-associate it to another crack of the same project
// @Tags         design-maps
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Design map ID"
// @Param        patch body types.UpdateDesignMapRequest true "Fields to change"
// @Success      200 {object} models.DesignMap "Updated design map"
// @Failure      400 {object} types.ErrorResponse "Empty patch or cross-project crack"
// @Failure      404 {object} types.ErrorResponse "Design map not found"
// @Failure      409 {object} types.ErrorResponse "Target crack already mapped"
// @Router       /api/v1/design-maps/{id} [patch]
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		var req types.UpdateDesignMapRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		updated, err := deps.DesignMapService.UpdateDesignMap(c.Request.Context(), id, designmapsService.UpdatePatch{
			X:             req.X,
			Y:             req.Y,
			Width:         req.Width,
			Height:        req.Height,
			CrackRecordID: req.CrackRecordID,
		})
		if err != nil {
			switch {
			case errors.Is(err, designmapsService.ErrMapNotFound):
				types.SendNotFound(c, "Not found")
			case errors.Is(err, designmapsService.ErrCrackNotInProject):
				types.SendBadRequest(c, "crackRecordId does not belong to this project")
			case errors.Is(err, designmapsService.ErrNothingToUpdate):
				types.SendBadRequest(c, "Nothing to update")
			case errors.Is(err, designmapsService.ErrDuplicateMap):
				types.SendConflict(c, "Design map already exists for selected crack")
			case errors.Is(err, designmapsService.ErrInvalidGeometry):
				types.SendBadRequest(c, "x,y,width,height required")
			default:
				types.SendInternalError(c, "Failed to update design map")
			}
			return
		}
		types.SendSuccess(c, updated)
	}
}

// Delete removes a design map by path parameter
// @Summary      Delete design map
// @Tags         design-maps
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Design map ID"
// @Success      200 {object} map[string]uint "Deleted map ID"
// @Failure      404 {object} types.ErrorResponse "Design map not found"
// @Router       /api/v1/design-maps/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		deleteByID(c, deps, id)
	}
}

// DeleteCollection removes a design map identified by ?id= or a JSON {id} body
// @Summary      Delete design map (collection form)
// @Description  Delete a design map identified either by an id query parameter or a JSON body containing id
// @Tags         design-maps
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id query int false "Design map ID"
// @Success      200 {object} map[string]uint "Deleted map ID"
// @Failure      400 {object} types.ErrorResponse "Missing ID"
// @Failure      404 {object} types.ErrorResponse "Design map not found"
// @Router       /api/v1/design-maps [delete]
func DeleteCollection(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var id uint
		if strings.Contains(c.ContentType(), "application/json") {
			var req types.DeleteDesignMapRequest
			if err := c.ShouldBindJSON(&req); err == nil {
				id = req.ID
			}
		}
		if id == 0 {
			if raw := c.Query("id"); raw != "" {
				parsed, err := strconv.ParseUint(raw, 10, 32)
				if err != nil {
					types.SendBadRequest(c, "id required")
					return
				}
				id = uint(parsed)
			}
		}
		if id == 0 {
			types.SendBadRequest(c, "id required")
			return
		}
		deleteByID(c, deps, id)
	}
}

func deleteByID(c *gin.Context, deps *types.Dependencies, id uint) {
	if err := deps.DesignMapService.DeleteDesignMap(c.Request.Context(), id); err != nil {
		if errors.Is(err, designmapsService.ErrMapNotFound) {
			types.SendNotFound(c, "Not found")
		} else {
			types.SendInternalError(c, "Failed to delete design map")
		}
		return
	}
	types.SendSuccess(c, gin.H{"id": id})
}
