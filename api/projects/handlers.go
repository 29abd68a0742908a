package projects

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/structech/survey-api/api/middleware"
	"github.com/structech/survey-api/api/types"
	"github.com/structech/survey-api/internal/models"
	projectsService "github.com/structech/survey-api/internal/services/projects"
	"github.com/structech/survey-api/pkg/config"
)

// List returns a filtered page of projects
// @Summary      List projects
// @Description  List projects with optional search over name, client and location. Project users only see projects they are members of.
// @Tags         projects
// @Security     BearerAuth
// @Produce      json
// @Param        search query string false "Match against name, client name and location"
// @Param        page query int false "Page number (default 1)"
// @Param        pageSize query int false "Page size (default 20, max 100)"
// @Param        sortBy query string false "Sort column (createdAt, name, clientName, location)"
// @Param        sortOrder query string false "asc or desc"
// @Success      200 {object} projects.Page "Page of projects"
// @Router       /api/v1/projects [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := projectsService.ListFilter{
			Search:    c.Query("search"),
			SortBy:    c.Query("sortBy"),
			SortOrder: c.Query("sortOrder"),
		}
		filter.Page, _ = strconv.Atoi(c.Query("page"))
		filter.PageSize, _ = strconv.Atoi(c.Query("pageSize"))

		// Client accounts only see their own projects
		if claims := middleware.Claims(c); claims != nil && claims.Role == models.RoleProjectUser {
			filter.MemberID = &claims.UserID
		}

		page, err := deps.ProjectService.ListProjects(c.Request.Context(), filter)
		if err != nil {
			types.SendInternalError(c, "Failed to list projects")
			return
		}
		types.SendSuccess(c, page)
	}
}

// Get returns a single project
// @Summary      Get project
// @Tags         projects
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200 {object} models.Project "Project"
// @Failure      403 {object} types.ErrorResponse "Not a member of this project"
// @Failure      404 {object} types.ErrorResponse "Project not found"
// @Router       /api/v1/projects/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		if !requireProjectAccess(c, deps, id) {
			return
		}

		project, err := deps.ProjectService.GetProjectByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, projectsService.ErrProjectNotFound) {
				types.SendNotFound(c, "Project not found")
			} else {
				types.SendInternalError(c, "Failed to get project")
			}
			return
		}
		types.SendSuccess(c, project)
	}
}

// Create registers a new project, optionally with a design image
// @Summary      Create project
// @Description  Create a project from a multipart form. The optional designImage part must be an image and within the upload size limit.
// @Tags         projects
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        name formData string true "Project name"
// @Param        clientName formData string false "Client name"
// @Param        location formData string false "Location"
// @Param        description formData string false "Description"
// @Param        designImage formData file false "Design image"
// @Success      201 {object} models.Project "Created project"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      413 {object} types.ErrorResponse "Design image too large"
// @Failure      415 {object} types.ErrorResponse "Design image is not an image"
// @Router       /api/v1/projects [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.PostForm("name"))
		if name == "" {
			types.SendBadRequest(c, "name is required")
			return
		}

		var location, description *string
		if v := c.PostForm("location"); v != "" {
			location = &v
		}
		if v := c.PostForm("description"); v != "" {
			description = &v
		}

		header, err := c.FormFile("designImage")
		if err == nil {
			if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
				c.JSON(415, types.ErrorResponse{Message: "Design image must be an image"})
				return
			}
			if max := config.GetInt64("storage.max_file_size"); max > 0 && header.Size > max {
				c.JSON(413, types.ErrorResponse{Message: "Design image exceeds the upload size limit"})
				return
			}
		}

		project, err := deps.ProjectService.CreateProject(c.Request.Context(), name, c.PostForm("clientName"), location, description, nil)
		if err != nil {
			if errors.Is(err, projectsService.ErrEmptyName) {
				types.SendBadRequest(c, "name is required")
			} else {
				types.SendInternalError(c, "Failed to create project")
			}
			return
		}

		if header != nil {
			src, err := header.Open()
			if err != nil {
				types.SendInternalError(c, "Failed to read design image")
				return
			}
			defer src.Close()

			storedPath, _, err := deps.FileStore.Save(project.ID, header.Filename, src)
			if err != nil {
				types.SendInternalError(c, "Failed to store design image")
				return
			}
			project, err = deps.ProjectService.UpdateProject(c.Request.Context(), project.ID,
				projectsService.UpdatePatch{DesignImage: &storedPath})
			if err != nil {
				types.SendInternalError(c, "Failed to attach design image")
				return
			}
		}

		types.SendCreated(c, project)
	}
}

// Update applies a partial update to a project
// @Summary      Update project
// @Tags         projects
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Project ID"
// @Param        patch body types.UpdateProjectRequest true "Fields to change"
// @Success      200 {object} models.Project "Updated project"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Project not found"
// @Router       /api/v1/projects/{id} [patch]
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		var req types.UpdateProjectRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		project, err := deps.ProjectService.UpdateProject(c.Request.Context(), id, projectsService.UpdatePatch{
			Name:        req.Name,
			ClientName:  req.ClientName,
			Location:    req.Location,
			Description: req.Description,
		})
		if err != nil {
			switch {
			case errors.Is(err, projectsService.ErrProjectNotFound):
				types.SendNotFound(c, "Project not found")
			case errors.Is(err, projectsService.ErrNothingToUpdate),
				errors.Is(err, projectsService.ErrEmptyName):
				types.SendBadRequest(c, err.Error())
			default:
				types.SendInternalError(c, "Failed to update project")
			}
			return
		}
		types.SendSuccess(c, project)
	}
}

// Delete removes a project and its dependent data
// @Summary      Delete project
// @Tags         projects
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200 {object} map[string]string "Deleted"
// @Failure      404 {object} types.ErrorResponse "Project not found"
// @Router       /api/v1/projects/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.ProjectService.DeleteProject(c.Request.Context(), id); err != nil {
			if errors.Is(err, projectsService.ErrProjectNotFound) {
				types.SendNotFound(c, "Project not found")
			} else {
				types.SendInternalError(c, "Failed to delete project")
			}
			return
		}
		types.SendSuccess(c, gin.H{"message": "Project deleted"})
	}
}

// requireProjectAccess rejects client accounts that are not members of the
// project. Staff and admin accounts pass through.
func requireProjectAccess(c *gin.Context, deps *types.Dependencies, projectID uint) bool {
	claims := middleware.Claims(c)
	if claims == nil || claims.Role != models.RoleProjectUser {
		return true
	}
	ok, err := deps.ProjectService.IsMember(c.Request.Context(), projectID, claims.UserID)
	if err != nil {
		types.SendInternalError(c, "Failed to check project access")
		return false
	}
	if !ok {
		types.SendForbidden(c, "Not a member of this project")
		return false
	}
	return true
}
