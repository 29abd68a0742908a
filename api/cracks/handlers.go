package cracks

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/structech/survey-api/api/types"
	cracksService "github.com/structech/survey-api/internal/services/cracks"
)

// List returns a filtered page of crack records
// @Summary      List crack records
// @Description  List a project's crack records with optional block, defect type and unmapped-only filters
// @Tags         cracks
// @Security     BearerAuth
// @Produce      json
// @Param        projectId query int true "Project ID"
// @Param        blockId query int false "Filter by block"
// @Param        defectType query string false "Filter by defect type"
// @Param        excludeMapped query bool false "Only records without a design map"
// @Param        page query int false "Page number (default 1)"
// @Param        pageSize query int false "Page size (default 20, max 100)"
// @Success      200 {object} cracks.Page "Page of crack records"
// @Failure      400 {object} types.ErrorResponse "Missing project ID"
// @Router       /api/v1/cracks [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := parseProjectID(c)
		if !ok {
			return
		}
		blockID, ok := types.OptionalUintQuery(c, "blockId")
		if !ok {
			return
		}

		filter := cracksService.ListFilter{
			ProjectID:  projectID,
			BlockID:    blockID,
			DefectType: c.Query("defectType"),
		}
		filter.ExcludeMapped, _ = strconv.ParseBool(c.Query("excludeMapped"))
		filter.Page, _ = strconv.Atoi(c.Query("page"))
		filter.PageSize, _ = strconv.Atoi(c.Query("pageSize"))

		page, err := deps.CrackService.ListCracks(c.Request.Context(), filter)
		if err != nil {
			types.SendInternalError(c, "Failed to list crack records")
			return
		}
		types.SendSuccess(c, page)
	}
}

// Import replaces a project's crack records from an uploaded workbook
// @Summary      Import crack survey workbook
// @Description  Parse the first sheet of the uploaded workbook and atomically replace the project's crack records with its valid rows. Row-level problems are collected in the outcome instead of aborting the import.
// @Tags         cracks
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        projectId query int true "Project ID"
// @Param        file formData file true "Survey workbook (.xlsx)"
// @Success      200 {object} cracks.ImportOutcome "Import outcome"
// @Failure      400 {object} types.ErrorResponse "Missing file, malformed workbook or no valid rows"
// @Router       /api/v1/cracks [post]
func Import(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := parseProjectID(c)
		if !ok {
			return
		}

		header, err := c.FormFile("file")
		if err != nil {
			types.SendBadRequest(c, "file required")
			return
		}
		src, err := header.Open()
		if err != nil {
			types.SendInternalError(c, "Failed to read upload")
			return
		}
		defer src.Close()

		outcome, err := deps.CrackService.Import(c.Request.Context(), projectID, src)
		if err != nil {
			switch {
			case errors.Is(err, cracksService.ErrWorkbookUnreadable):
				types.SendBadRequest(c, "unreadable workbook")
			case errors.Is(err, cracksService.ErrNoSheet):
				types.SendBadRequest(c, "no sheet")
			case errors.Is(err, cracksService.ErrEmptySheet):
				types.SendBadRequest(c, "empty sheet")
			case errors.Is(err, cracksService.ErrUnexpectedHeader):
				types.SendBadRequest(c, "unexpected header format")
			case errors.Is(err, cracksService.ErrNoValidRows):
				types.SendBadRequest(c, "No valid data rows")
			default:
				types.SendInternalError(c, "Failed to import workbook")
			}
			return
		}
		types.SendSuccess(c, outcome)
	}
}

// Delete removes a project's crack records, optionally scoped to one block
// @Summary      Delete crack records
// @Tags         cracks
// @Security     BearerAuth
// @Produce      json
// @Param        projectId query int true "Project ID"
// @Param        blockId query int false "Restrict to one block"
// @Success      200 {object} types.DeletedResponse "Number of rows removed"
// @Failure      400 {object} types.ErrorResponse "Missing project ID"
// @Router       /api/v1/cracks [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := parseProjectID(c)
		if !ok {
			return
		}
		blockID, ok := types.OptionalUintQuery(c, "blockId")
		if !ok {
			return
		}

		deleted, err := deps.CrackService.DeleteCracks(c.Request.Context(), projectID, blockID)
		if err != nil {
			types.SendInternalError(c, "Failed to delete crack records")
			return
		}
		types.SendSuccess(c, types.DeletedResponse{Deleted: deleted})
	}
}

func parseProjectID(c *gin.Context) (uint, bool) {
	raw := c.Query("projectId")
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		types.SendBadRequest(c, "projectId required")
		return 0, false
	}
	return uint(value), true
}
