package projects

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/structech/survey-api/api/types"
	projectsService "github.com/structech/survey-api/internal/services/projects"
)

// ListMembers returns the users attached to a project
// @Summary      List project members
// @Tags         projects
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200 {object} object{members=[]types.UserResponse} "Members"
// @Failure      404 {object} types.ErrorResponse "Project not found"
// @Router       /api/v1/projects/{id}/members [get]
func ListMembers(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		members, err := deps.ProjectService.ListMembers(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, projectsService.ErrProjectNotFound) {
				types.SendNotFound(c, "Project not found")
			} else {
				types.SendInternalError(c, "Failed to list members")
			}
			return
		}
		types.SendSuccess(c, gin.H{"members": types.NewUserResponses(members)})
	}
}

// AddMember attaches a user to a project
// @Summary      Add project member
// @Tags         projects
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Project ID"
// @Param        member body types.AddMemberRequest true "User to add"
// @Success      201 {object} map[string]string "Added"
// @Failure      404 {object} types.ErrorResponse "Project or user not found"
// @Failure      409 {object} types.ErrorResponse "Already a member"
// @Router       /api/v1/projects/{id}/members [post]
func AddMember(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		var req types.AddMemberRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		err := deps.ProjectService.AddMember(c.Request.Context(), id, req.UserID)
		if err != nil {
			switch {
			case errors.Is(err, projectsService.ErrProjectNotFound):
				types.SendNotFound(c, "Project not found")
			case errors.Is(err, projectsService.ErrUserNotFound):
				types.SendNotFound(c, "User not found")
			case errors.Is(err, projectsService.ErrDuplicateMember):
				types.SendConflict(c, "User is already a member of this project")
			default:
				types.SendInternalError(c, "Failed to add member")
			}
			return
		}
		types.SendCreated(c, gin.H{"message": "Member added"})
	}
}

// RemoveMember detaches a user from a project
// @Summary      Remove project member
// @Tags         projects
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Project ID"
// @Param        userId path int true "User ID"
// @Success      200 {object} map[string]string "Removed"
// @Failure      404 {object} types.ErrorResponse "Project or membership not found"
// @Router       /api/v1/projects/{id}/members/{userId} [delete]
func RemoveMember(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		userID, ok := types.ParseUintParam(c, "userId")
		if !ok {
			return
		}

		err := deps.ProjectService.RemoveMember(c.Request.Context(), id, userID)
		if err != nil {
			switch {
			case errors.Is(err, projectsService.ErrProjectNotFound):
				types.SendNotFound(c, "Project not found")
			case errors.Is(err, projectsService.ErrMemberNotFound):
				types.SendNotFound(c, "User is not a member of this project")
			default:
				types.SendInternalError(c, "Failed to remove member")
			}
			return
		}
		types.SendSuccess(c, gin.H{"message": "Member removed"})
	}
}
